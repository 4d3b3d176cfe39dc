// Package main provides the command line entry point for developmental
// evaluation scoring.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/cli"
	"github.com/achour007/kidaily-web-sub001/internal/config"
	"github.com/achour007/kidaily-web-sub001/internal/logging"
	"github.com/achour007/kidaily-web-sub001/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := pflag.NewFlagSet("kidaily-eval", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	configFile := fs.StringP("config", "c", "", "config file (default: kidaily.yaml in ., ./config, /etc/kidaily/)")
	switch err := fs.Parse(args); {
	case errors.Is(err, pflag.ErrHelp):
		args = []string{"help"}
	case err != nil:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	default:
		args = fs.Args()
	}

	cfgManager, err := config.NewManagerFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := cfgManager.GetConfig()

	// check only needs the catalog, so it reports even a configuration
	// that cannot build a logger or a service.
	if len(args) > 0 && args[0] == "check" {
		if len(args) > 1 {
			fmt.Fprintf(os.Stderr, "check: unexpected argument %q\n", args[1])
			return 2
		}
		if err := cli.Check(catalog.Default(), cfgManager, stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	if err := cfgManager.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, closer, err := logging.New(cfgManager.GetLoggingConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		return 1
	}
	defer closer.Close()

	svc, err := service.NewEvaluationService(logger, catalog.Default(), cfg.Scoring, cfg.Evaluation)
	if err != nil {
		logger.WithError(err).Error("Failed to create evaluation service")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"config_file": cfgManager.ConfigFileUsed(),
		"strict":      cfg.Evaluation.StrictValidation,
	}).Debug("Starting kidaily-eval")

	if err := cli.New(svc, cfgManager, logger, stdin, stdout).Run(ctx, args); err != nil {
		logger.WithError(err).Error("Command failed")
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}

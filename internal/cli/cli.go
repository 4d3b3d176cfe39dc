// Package cli implements the kidaily-eval command line: scoring an answer set
// and browsing the bundled catalog. Results are written to stdout as JSON.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
	"github.com/achour007/kidaily-web-sub001/internal/service"
)

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("usage error")

// CLI dispatches kidaily-eval subcommands.
type CLI struct {
	service *service.EvaluationService
	config  domain.ConfigManager
	logger  *logrus.Logger
	stdin   io.Reader
	stdout  io.Writer
}

// New creates a CLI writing results to stdout and reading "-" answer files
// from stdin.
func New(svc *service.EvaluationService, cfg domain.ConfigManager, logger *logrus.Logger, stdin io.Reader, stdout io.Writer) *CLI {
	return &CLI{
		service: svc,
		config:  cfg,
		logger:  logger,
		stdin:   stdin,
		stdout:  stdout,
	}
}

// Run executes the command named by args[0].
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showHelp()
	}

	switch args[0] {
	case "evaluate":
		return c.evaluate(ctx, args[1:])
	case "questions":
		return c.questions(args[1:])
	case "domains":
		return c.writeJSON(c.service.Domains())
	case "check":
		return c.check()
	case "help", "--help", "-h":
		return c.showHelp()
	default:
		_ = c.showHelp()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

func (c *CLI) showHelp() error {
	help := `kidaily-eval - developmental evaluation scoring

Usage:
  kidaily-eval [--config <file>] <command> [options]

Commands:
  evaluate   Score an answer set and print the evaluation report
  questions  List the questions applicable at an age
  domains    List the developmental domains
  check      Validate the bundled catalog and the configuration

Options:
  evaluate  --answers <file|->  answer document (YAML or JSON)
            --age <months>      child age, overrides the document
            --strict            reject the answer set on any issue
  questions --age <months>      child age (required)
            --critical          only critical-age milestones
            --domain <tag>      only one domain, e.g. gross_motor

Answer document:
  age_in_months: 24
  answers:
    com_two_words_24m: often
    gm_walks_18m: always
`
	_, err := fmt.Fprint(c.stdout, help)
	return err
}

func (c *CLI) evaluate(ctx context.Context, args []string) error {
	fs := newFlagSet("evaluate")
	answersPath := fs.StringP("answers", "a", "", "answer document (YAML or JSON), - for stdin")
	age := fs.Int("age", 0, "child age in months, overrides the document")
	strict := fs.Bool("strict", false, "reject the answer set on any issue")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *answersPath == "" {
		return fmt.Errorf("%w: --answers is required", ErrUsage)
	}

	params, err := c.readAnswers(*answersPath)
	if err != nil {
		return err
	}
	if fs.Changed("age") {
		params.AgeInMonths = *age
	}
	params.Strict = params.Strict || *strict

	c.logger.WithFields(logrus.Fields{
		"source":        *answersPath,
		"age_in_months": params.AgeInMonths,
	}).Debug("Loaded answer document")

	result, err := c.service.Evaluate(ctx, params)
	if err != nil {
		return err
	}
	return c.writeJSON(result)
}

func (c *CLI) readAnswers(path string) (*service.EvaluateParams, error) {
	var r io.Reader
	if path == "-" {
		r = c.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open answer document: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read answer document: %w", err)
	}

	// YAML is a superset of JSON, so one decoder serves both formats.
	params := &service.EvaluateParams{}
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("failed to parse answer document: %w", err)
	}
	if params.Answers == nil {
		params.Answers = domain.Answers{}
	}
	return params, nil
}

func (c *CLI) questions(args []string) error {
	fs := newFlagSet("questions")
	age := fs.Int("age", 0, "child age in months")
	critical := fs.Bool("critical", false, "only critical-age milestones")
	only := fs.StringP("domain", "d", "", "only one domain")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if !fs.Changed("age") {
		return fmt.Errorf("%w: --age is required", ErrUsage)
	}

	questions, err := c.service.Questions(&service.QuestionsParams{
		AgeInMonths:  *age,
		CriticalOnly: *critical,
		Domain:       *only,
	})
	if err != nil {
		return err
	}
	return c.writeJSON(questions)
}

// checkResult is the output of the check command
type checkResult struct {
	Valid      bool     `json:"valid"`
	Questions  int      `json:"questions"`
	Domains    int      `json:"domains"`
	MaxAge     int      `json:"max_age_in_months"`
	ConfigFile string   `json:"config_file,omitempty"`
	Issues     []string `json:"issues,omitempty"`
}

func (c *CLI) check() error {
	return Check(c.service.Engine().Catalog(), c.config, c.stdout)
}

// Check writes a summary of the catalog and every configuration issue to w.
// It needs neither a logger nor a service, so it still reports when the
// configuration is too broken to build them.
func Check(cat *catalog.Catalog, cfg domain.ConfigManager, w io.Writer) error {
	result := checkResult{
		Valid:     true,
		Questions: cat.Len(),
		Domains:   len(cat.AllDomains()),
		MaxAge:    cat.MaxAgeInMonths(),
	}

	if cfg != nil {
		if used, ok := cfg.(interface{ ConfigFileUsed() string }); ok {
			result.ConfigFile = used.ConfigFileUsed()
		}
		if err := cfg.Validate(); err != nil {
			result.Valid = false
			result.Issues = issueMessages(err)
		}
	}

	if err := writeJSON(w, result); err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("configuration is invalid")
	}
	return nil
}

// issueMessages flattens a joined error into one message per issue.
func issueMessages(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, issueMessages(e)...)
	}
	return out
}

func (c *CLI) writeJSON(v interface{}) error {
	return writeJSON(c.stdout, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", ErrUsage, fs.Name(), fs.Arg(0))
	}
	return nil
}

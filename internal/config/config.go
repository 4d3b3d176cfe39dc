package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g.
// KIDAILY_SCORING_EXCELLENT_MIN or KIDAILY_LOGGING_LEVEL.
const EnvPrefix = "KIDAILY"

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	v          *viper.Viper
	configFile string
	config     *domain.Config
}

var _ domain.ConfigManager = (*Manager)(nil)

// NewManager creates a new configuration manager. Settings come from
// kidaily.yaml (searched in ., ./config and /etc/kidaily/), then KIDAILY_*
// environment variables, then defaults.
func NewManager() (*Manager, error) {
	return NewManagerFromFile("")
}

// NewManagerFromFile is NewManager with an explicit config file. An empty
// path falls back to the search paths.
func NewManagerFromFile(path string) (*Manager, error) {
	m := &Manager{configFile: path}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	v := viper.New()

	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		v.SetConfigName("kidaily")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/kidaily/")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// The config file is optional unless one was named explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if m.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.v = v
	m.config = config
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// Scoring defaults
	scoring := domain.DefaultScoringConfig()
	v.SetDefault("scoring.excellent_min", scoring.ExcellentMin)
	v.SetDefault("scoring.normal_min", scoring.NormalMin)
	v.SetDefault("scoring.delayed_min", scoring.DelayedMin)
	v.SetDefault("scoring.full_evaluation_below", scoring.FullEvaluationBelow)
	v.SetDefault("scoring.reinforced_monitoring_below", scoring.ReinforcedMonitoringBelow)
	v.SetDefault("scoring.red_flag_max_score", scoring.RedFlagMaxScore)

	// Evaluation defaults
	v.SetDefault("evaluation.strict_validation", false)
	v.SetDefault("evaluation.max_age_in_months", 72)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetScoringConfig returns the scoring table
func (m *Manager) GetScoringConfig() domain.ScoringConfig {
	return m.config.Scoring
}

// GetEvaluationConfig returns the evaluation policy
func (m *Manager) GetEvaluationConfig() domain.EvaluationConfig {
	return m.config.Evaluation
}

// GetLoggingConfig returns logging configuration
func (m *Manager) GetLoggingConfig() *domain.LoggingConfig {
	return &m.config.Logging
}

// ConfigFileUsed returns the config file that was read, if any
func (m *Manager) ConfigFileUsed() string {
	return m.v.ConfigFileUsed()
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration. Every invalid setting is reported;
// the returned error joins one error per issue.
func (m *Manager) Validate() error {
	config := m.config
	var errs []error

	if err := config.Scoring.Validate(); err != nil {
		errs = append(errs, err)
	}

	if config.Evaluation.MaxAgeInMonths < 0 {
		errs = append(errs, fmt.Errorf("invalid max age in months: %d", config.Evaluation.MaxAgeInMonths))
	}

	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		errs = append(errs, fmt.Errorf("invalid log level: %s", config.Logging.Level))
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %s", config.Logging.Format))
	}

	if config.Logging.Output == "" {
		errs = append(errs, fmt.Errorf("log output is required"))
	}

	return errors.Join(errs...)
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(m.config.Environment) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(m.config.Environment)
	return env == "development" || env == "dev" || env == ""
}

package domain

// Config represents the main application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Scoring     ScoringConfig    `mapstructure:"scoring"`
	Evaluation  EvaluationConfig `mapstructure:"evaluation"`
	Logging     LoggingConfig    `mapstructure:"logging"`
}

// EvaluationConfig controls how the service treats malformed answer sets
type EvaluationConfig struct {
	// StrictValidation rejects answer sets containing unknown question ids,
	// unknown option values or answers to questions not yet applicable.
	StrictValidation bool `mapstructure:"strict_validation"`
	// MaxAgeInMonths bounds the accepted child age; 0 disables the bound.
	MaxAgeInMonths int `mapstructure:"max_age_in_months"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json", "text"
	Output string `mapstructure:"output"` // "stdout", "stderr" or a file path
}

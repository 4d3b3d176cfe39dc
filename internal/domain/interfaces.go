package domain

// ReportGenerator turns an answer set into an evaluation report
type ReportGenerator interface {
	GenerateReport(answers Answers, ageInMonths int) EvaluationReport
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetScoringConfig() ScoringConfig
	GetLoggingConfig() *LoggingConfig
	Reload() error
	Validate() error
	IsProduction() bool
	IsDevelopment() bool
}

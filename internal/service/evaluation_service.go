package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
	"github.com/achour007/kidaily-web-sub001/internal/evaluation"
)

// EvaluateParams holds the input of one evaluation
type EvaluateParams struct {
	AgeInMonths int            `json:"age_in_months" yaml:"age_in_months"`
	Answers     domain.Answers `json:"answers" yaml:"answers"`
	// Strict rejects the answer set on any validation issue, regardless of
	// the configured policy.
	Strict bool `json:"strict,omitempty" yaml:"strict"`
}

// EvaluateResult is the outcome of a successful evaluation
type EvaluateResult struct {
	EvaluationID   string                    `json:"evaluation_id"`
	Report         domain.EvaluationReport   `json:"report"`
	Warnings       []*domain.ValidationError `json:"warnings,omitempty"`
	ProcessingTime time.Duration             `json:"processing_time"`
}

// QuestionsParams selects catalog questions for display
type QuestionsParams struct {
	AgeInMonths  int    `json:"age_in_months"`
	CriticalOnly bool   `json:"critical_only,omitempty"`
	Domain       string `json:"domain,omitempty"`
}

// EvaluationService runs evaluations against the scoring engine and applies
// the configured answer validation policy.
type EvaluationService struct {
	logger *logrus.Logger
	engine *evaluation.Engine
	config domain.EvaluationConfig
	newID  func() string
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(
	logger *logrus.Logger,
	cat *catalog.Catalog,
	scoring domain.ScoringConfig,
	cfg domain.EvaluationConfig,
) (*EvaluationService, error) {
	engine, err := evaluation.NewEngine(cat, scoring)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring engine: %w", err)
	}
	if cfg.MaxAgeInMonths < 0 {
		return nil, fmt.Errorf("max age in months must not be negative: %d", cfg.MaxAgeInMonths)
	}

	return &EvaluationService{
		logger: logger,
		engine: engine,
		config: cfg,
		newID:  uuid.NewString,
	}, nil
}

// Engine returns the underlying scoring engine
func (s *EvaluationService) Engine() *evaluation.Engine {
	return s.engine
}

// Evaluate validates the answer set, scores it and returns the report
func (s *EvaluationService) Evaluate(ctx context.Context, params *EvaluateParams) (*EvaluateResult, error) {
	startTime := time.Now()
	evaluationID := s.newID()

	if err := ctx.Err(); err != nil {
		return nil, domain.NewEvaluationError(domain.ErrCodeCancelled,
			"evaluation cancelled", err.Error(), evaluationID, err)
	}
	if params == nil {
		return nil, domain.NewEvaluationError(domain.ErrCodeInvalidInput,
			"evaluation parameters are required", "", evaluationID, nil)
	}

	strict := s.config.StrictValidation || params.Strict
	logger := s.logger.WithFields(logrus.Fields{
		"evaluation_id": evaluationID,
		"age_in_months": params.AgeInMonths,
		"answers":       len(params.Answers),
		"strict":        strict,
	})
	logger.Info("Starting developmental evaluation")

	fc := s.engine.FilterByAge(params.AgeInMonths)
	issues := s.validate(fc, params)

	if len(issues) > 0 {
		if strict {
			err := &domain.AnswerSetError{Issues: issues}
			logger.WithField("issues", len(issues)).Warn("Answer set rejected")
			return nil, domain.NewEvaluationError(domain.ErrCodeValidation,
				"answer set rejected", err.Error(), evaluationID, err)
		}
		for _, issue := range issues {
			logger.WithFields(logrus.Fields{
				"field": issue.Field,
				"value": issue.Value,
			}).Warn(issue.Message)
		}
	}

	report := s.engine.Report(fc, params.Answers)

	for _, ds := range report.DomainScores {
		if !ds.Level.RequiresFollowUp() {
			continue
		}
		logger.WithFields(logrus.Fields(ds.Level.LogFields())).WithFields(logrus.Fields{
			"domain":     ds.Domain,
			"percentage": ds.Percentage,
			"answered":   ds.AnsweredQuestions,
		}).Debug("Domain requires follow-up")
	}

	result := &EvaluateResult{
		EvaluationID:   evaluationID,
		Report:         report,
		Warnings:       issues,
		ProcessingTime: time.Since(startTime),
	}

	logger.WithFields(logrus.Fields{
		"overall_score":     report.OverallScore,
		"critical_findings": len(report.CriticalFindings),
		"concerning":        report.ConcerningDomains(),
		"red_flags":         len(report.RedFlags),
		"warnings":          len(issues),
		"processing_time":   result.ProcessingTime,
	}).Info("Developmental evaluation completed")

	return result, nil
}

// validate collects age and answer issues; age issues come first.
func (s *EvaluationService) validate(fc *catalog.FilteredCatalog, params *EvaluateParams) []*domain.ValidationError {
	var issues []*domain.ValidationError
	if err := s.checkAge(params.AgeInMonths); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			issues = append(issues, verr)
		}
	}
	return append(issues, s.engine.ValidateAnswers(fc, params.Answers)...)
}

func (s *EvaluationService) checkAge(ageInMonths int) error {
	if ageInMonths < 0 {
		return fmt.Errorf("%w: %w", domain.ErrNegativeAgeMonths,
			domain.NewValidationError("age_in_months", "must not be negative", ageInMonths))
	}
	if s.config.MaxAgeInMonths > 0 && ageInMonths > s.config.MaxAgeInMonths {
		return domain.NewValidationError("age_in_months",
			fmt.Sprintf("must not exceed %d", s.config.MaxAgeInMonths), ageInMonths)
	}
	return nil
}

// Questions lists the catalog questions applicable at an age, optionally
// restricted to critical-age items or to one domain.
func (s *EvaluationService) Questions(params *QuestionsParams) ([]domain.EvaluationQuestion, error) {
	if params == nil {
		params = &QuestionsParams{}
	}
	if err := s.checkAge(params.AgeInMonths); err != nil {
		return nil, domain.NewEvaluationError(domain.ErrCodeInvalidInput,
			"invalid age", err.Error(), "", err)
	}

	var only domain.Domain
	if params.Domain != "" {
		d, err := domain.ParseDomain(params.Domain)
		if err != nil {
			return nil, domain.NewEvaluationError(domain.ErrCodeInvalidInput,
				"invalid domain", err.Error(), "", err)
		}
		only = d
	}

	cat := s.engine.Catalog()
	var questions []domain.EvaluationQuestion
	if params.CriticalOnly {
		questions = cat.CriticalQuestionsApplicableAt(params.AgeInMonths)
	} else {
		questions = cat.QuestionsApplicableAt(params.AgeInMonths)
	}

	if only != "" {
		filtered := questions[:0]
		for _, q := range questions {
			if q.Domain == only {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	s.logger.WithFields(logrus.Fields{
		"age_in_months": params.AgeInMonths,
		"critical_only": params.CriticalOnly,
		"domain":        params.Domain,
		"count":         len(questions),
	}).Debug("Listed applicable questions")

	return questions, nil
}

// Domains returns every domain config in reporting order
func (s *EvaluationService) Domains() []domain.DomainConfig {
	return s.engine.Catalog().AllDomains()
}

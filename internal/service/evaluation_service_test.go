package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

type EvaluationServiceSuite struct {
	suite.Suite
	hook    *test.Hook
	service *EvaluationService
}

func (s *EvaluationServiceSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.hook = hook

	svc, err := NewEvaluationService(logger, catalog.Default(), domain.DefaultScoringConfig(),
		domain.EvaluationConfig{MaxAgeInMonths: 72})
	s.Require().NoError(err)
	svc.newID = func() string { return "eval-1" }
	s.service = svc
}

func (s *EvaluationServiceSuite) bestAnswers(age int) domain.Answers {
	answers := domain.Answers{}
	for _, q := range s.service.Engine().FilterByAge(age).Questions() {
		for _, opt := range q.Options {
			if opt.Score == domain.MaxOptionScore {
				answers[q.ID] = opt.Value
			}
		}
	}
	return answers
}

func (s *EvaluationServiceSuite) TestEvaluate() {
	result, err := s.service.Evaluate(context.Background(), &EvaluateParams{
		AgeInMonths: 24,
		Answers:     s.bestAnswers(24),
	})
	s.Require().NoError(err)

	s.Equal("eval-1", result.EvaluationID)
	s.Equal(24, result.Report.AgeInMonths)
	s.InDelta(100.0, result.Report.OverallScore, 1e-9)
	s.Empty(result.Warnings)
	s.GreaterOrEqual(int64(result.ProcessingTime), int64(0))

	last := s.hook.LastEntry()
	s.Require().NotNil(last)
	s.Equal("Developmental evaluation completed", last.Message)
	s.Equal("eval-1", last.Data["evaluation_id"])
	s.Equal(logrus.InfoLevel, last.Level)
}

func (s *EvaluationServiceSuite) TestEvaluate_LenientKeepsWarnings() {
	result, err := s.service.Evaluate(context.Background(), &EvaluateParams{
		AgeInMonths: 12,
		Answers: domain.Answers{
			"com_first_words_12m": "always",
			"com_two_words_24m":   "always",
			"unknown":             "yes",
		},
	})
	s.Require().NoError(err)
	s.Len(result.Warnings, 2)

	ds, ok := result.Report.DomainScore(domain.COMMUNICATION)
	s.Require().True(ok)
	s.Equal(1, ds.AnsweredQuestions)

	warnings := 0
	for _, entry := range s.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
		}
	}
	s.Equal(2, warnings)
}

func (s *EvaluationServiceSuite) TestEvaluate_StrictRejects() {
	result, err := s.service.Evaluate(context.Background(), &EvaluateParams{
		AgeInMonths: 12,
		Answers:     domain.Answers{"com_coos_2m": "maybe"},
		Strict:      true,
	})
	s.Nil(result)
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrInvalidAnswers))

	var evalErr *domain.EvaluationError
	s.Require().True(errors.As(err, &evalErr))
	s.Equal(domain.ErrCodeValidation, evalErr.Code)
	s.Equal("eval-1", evalErr.EvaluationID)

	var setErr *domain.AnswerSetError
	s.Require().True(errors.As(err, &setErr))
	s.Len(setErr.Issues, 1)
	s.Equal("answers.com_coos_2m", setErr.Issues[0].Field)
}

func (s *EvaluationServiceSuite) TestEvaluate_StrictFromConfig() {
	s.service.config.StrictValidation = true

	_, err := s.service.Evaluate(context.Background(), &EvaluateParams{
		AgeInMonths: 6,
		Answers:     domain.Answers{"gm_walks_18m": "always"},
	})
	s.True(errors.Is(err, domain.ErrInvalidAnswers))

	// A clean answer set passes strict validation.
	result, err := s.service.Evaluate(context.Background(), &EvaluateParams{
		AgeInMonths: 6,
		Answers:     domain.Answers{"gm_rolls_6m": "always"},
	})
	s.Require().NoError(err)
	s.Empty(result.Warnings)
}

func (s *EvaluationServiceSuite) TestEvaluate_NegativeAge() {
	result, err := s.service.Evaluate(context.Background(), &EvaluateParams{AgeInMonths: -1})
	s.Require().NoError(err)
	s.Require().NotEmpty(result.Warnings)
	s.Equal("age_in_months", result.Warnings[0].Field)
	s.Equal(0.0, result.Report.OverallScore)

	_, err = s.service.Evaluate(context.Background(), &EvaluateParams{AgeInMonths: -1, Strict: true})
	s.True(errors.Is(err, domain.ErrInvalidAnswers))
}

func (s *EvaluationServiceSuite) TestEvaluate_AgeAboveMaximum() {
	result, err := s.service.Evaluate(context.Background(), &EvaluateParams{AgeInMonths: 120})
	s.Require().NoError(err)
	s.Require().Len(result.Warnings, 1)
	s.Equal("must not exceed 72", result.Warnings[0].Message)
}

func (s *EvaluationServiceSuite) TestEvaluate_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.service.Evaluate(ctx, &EvaluateParams{AgeInMonths: 12})
	s.Nil(result)
	s.True(errors.Is(err, context.Canceled))

	var evalErr *domain.EvaluationError
	s.Require().True(errors.As(err, &evalErr))
	s.Equal(domain.ErrCodeCancelled, evalErr.Code)
}

func (s *EvaluationServiceSuite) TestEvaluate_NilParams() {
	_, err := s.service.Evaluate(context.Background(), nil)

	var evalErr *domain.EvaluationError
	s.Require().True(errors.As(err, &evalErr))
	s.Equal(domain.ErrCodeInvalidInput, evalErr.Code)
}

func (s *EvaluationServiceSuite) TestQuestions() {
	all, err := s.service.Questions(&QuestionsParams{AgeInMonths: 12})
	s.Require().NoError(err)
	s.NotEmpty(all)

	critical, err := s.service.Questions(&QuestionsParams{AgeInMonths: 12, CriticalOnly: true})
	s.Require().NoError(err)
	s.Less(len(critical), len(all))
	for _, q := range critical {
		s.True(q.CriticalAge)
	}

	motor, err := s.service.Questions(&QuestionsParams{AgeInMonths: 12, Domain: "gross_motor"})
	s.Require().NoError(err)
	s.NotEmpty(motor)
	for _, q := range motor {
		s.Equal(domain.GROSS_MOTOR, q.Domain)
	}
}

func (s *EvaluationServiceSuite) TestQuestions_InvalidInput() {
	_, err := s.service.Questions(&QuestionsParams{AgeInMonths: 12, Domain: "hearing"})
	s.True(errors.Is(err, domain.ErrInvalidDomain))

	_, err = s.service.Questions(&QuestionsParams{AgeInMonths: -3})
	s.True(errors.Is(err, domain.ErrNegativeAgeMonths))
}

func (s *EvaluationServiceSuite) TestDomains() {
	domains := s.service.Domains()
	s.Len(domains, 8)
	s.Equal(domain.COMMUNICATION, domains[0].Domain)
}

func TestEvaluationServiceSuite(t *testing.T) {
	suite.Run(t, new(EvaluationServiceSuite))
}

func TestNewEvaluationService_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := NewEvaluationService(logger, nil, domain.DefaultScoringConfig(), domain.EvaluationConfig{})
	assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))

	bad := domain.DefaultScoringConfig()
	bad.DelayedMin = 0
	_, err = NewEvaluationService(logger, catalog.Default(), bad, domain.EvaluationConfig{})
	assert.True(t, errors.Is(err, domain.ErrInvalidScoring))

	_, err = NewEvaluationService(logger, catalog.Default(), domain.DefaultScoringConfig(),
		domain.EvaluationConfig{MaxAgeInMonths: -1})
	require.Error(t, err)
}

func TestEvaluationService_UniqueIDs(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc, err := NewEvaluationService(logger, catalog.Default(), domain.DefaultScoringConfig(), domain.EvaluationConfig{})
	require.NoError(t, err)

	first, err := svc.Evaluate(context.Background(), &EvaluateParams{AgeInMonths: 6})
	require.NoError(t, err)
	second, err := svc.Evaluate(context.Background(), &EvaluateParams{AgeInMonths: 6})
	require.NoError(t, err)

	assert.NotEqual(t, first.EvaluationID, second.EvaluationID)
	assert.Len(t, first.EvaluationID, 36)
	assert.Equal(t, first.Report, second.Report)
}

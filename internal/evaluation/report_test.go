package evaluation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

func TestGenerateReport_AllBestAt24Months(t *testing.T) {
	engine := newTestEngine(t)
	answers := answerAll(engine.FilterByAge(24), bestOption)

	report := engine.GenerateReport(answers, 24)

	assert.Equal(t, 24, report.AgeInMonths)
	assert.InDelta(t, 100.0, report.OverallScore, 1e-9)
	require.Len(t, report.DomainScores, 8)
	for _, ds := range report.DomainScores {
		assert.Equal(t, domain.EXCELLENT, ds.Level, ds.Domain.String())
	}
	assert.Empty(t, report.CriticalFindings)
	assert.Empty(t, report.RedFlags)

	routine := guidanceFor(domain.GuidanceRoutine)
	assert.Equal(t, routine.recommendations, report.Recommendations)
	assert.Equal(t, routine.nextSteps, report.NextSteps)
	assert.Contains(t, report.ClinicalNotes, "24 mois")
	assert.Contains(t, report.ClinicalNotes, "100%")
	assert.Contains(t, report.ClinicalNotes, "Aucun domaine préoccupant")
}

func TestGenerateReport_AllWorstAt24Months(t *testing.T) {
	engine := newTestEngine(t)
	answers := answerAll(engine.FilterByAge(24), worstOption)

	report := engine.GenerateReport(answers, 24)

	assert.Equal(t, 0.0, report.OverallScore)
	for _, ds := range report.DomainScores {
		assert.Equal(t, domain.CONCERNING, ds.Level, ds.Domain.String())
		assert.False(t, ds.IsIncomplete())
	}
	require.Len(t, report.CriticalFindings, 8)
	for i, cfg := range engine.Catalog().AllDomains() {
		assert.True(t, strings.HasPrefix(report.CriticalFindings[i], cfg.Name), report.CriticalFindings[i])
		assert.Contains(t, report.ClinicalNotes, cfg.Name)
	}

	full := guidanceFor(domain.GuidanceFullEvaluation)
	assert.Equal(t, full.nextSteps, report.NextSteps)
	assert.Equal(t, full.recommendations, report.Recommendations[len(report.Recommendations)-len(full.recommendations):])

	// Concerning domains contribute their own recommendations first.
	concerning := levelRecommendations(domain.CONCERNING)
	assert.Equal(t, 8*len(concerning)+len(full.recommendations), len(report.Recommendations))
	assert.Equal(t, concerning, report.Recommendations[:len(concerning)])

	// Every critical milestone expected by 24 months was answered at 0.
	critical := engine.Catalog().CriticalQuestionsApplicableAt(24)
	assert.Len(t, report.RedFlags, len(critical))
}

func TestGenerateReport_NoAnswersAt6Months(t *testing.T) {
	engine := newTestEngine(t)

	var report domain.EvaluationReport
	require.NotPanics(t, func() {
		report = engine.GenerateReport(domain.Answers{}, 6)
	})

	assert.Equal(t, 0.0, report.OverallScore)
	require.Len(t, report.DomainScores, 8)
	for _, ds := range report.DomainScores {
		assert.True(t, ds.IsIncomplete(), ds.Domain.String())
		assert.Equal(t, domain.CONCERNING, ds.Level)
		assert.Equal(t, []string{IncompleteDomainRecommendation}, ds.Recommendations)
	}
	assert.Len(t, report.CriticalFindings, 8)
	assert.Contains(t, report.CriticalFindings[0], "évaluation incomplète")
	assert.Equal(t, guidanceFor(domain.GuidanceFullEvaluation).nextSteps, report.NextSteps)
}

func TestGenerateReport_NilAnswers(t *testing.T) {
	engine := newTestEngine(t)
	assert.NotPanics(t, func() {
		engine.GenerateReport(nil, 36)
	})
}

func TestGenerateReport_NegativeAge(t *testing.T) {
	engine := newTestEngine(t)
	report := engine.GenerateReport(domain.Answers{"com_coos_2m": "always"}, -3)

	assert.Equal(t, 0.0, report.OverallScore)
	for _, ds := range report.DomainScores {
		assert.Equal(t, 0, ds.ApplicableQuestions)
		assert.True(t, ds.IsIncomplete())
	}
}

func TestGenerateReport_AgeGatesAnswers(t *testing.T) {
	engine := newTestEngine(t)

	// At 12 months the 24-month item is out of scope and must not count.
	report := engine.GenerateReport(domain.Answers{
		"com_first_words_12m": "always",
		"com_two_words_24m":   "not_yet",
	}, 12)

	ds, ok := report.DomainScore(domain.COMMUNICATION)
	require.True(t, ok)
	assert.Equal(t, 1, ds.AnsweredQuestions)
	assert.InDelta(t, 100.0, ds.Percentage, 1e-9)
}

func TestGenerateReport_OverallIsWeightedNotAveraged(t *testing.T) {
	engine := newCustomEngine(t,
		domain.EvaluationQuestion{ID: "light", Domain: domain.GROSS_MOTOR, AgeInMonths: 6, Weight: 1},
		domain.EvaluationQuestion{ID: "heavy", Domain: domain.COGNITIVE, AgeInMonths: 6, Weight: 3},
	)

	report := engine.GenerateReport(domain.Answers{"light": "a4", "heavy": "a0"}, 6)

	gm, ok := report.DomainScore(domain.GROSS_MOTOR)
	require.True(t, ok)
	cog, ok := report.DomainScore(domain.COGNITIVE)
	require.True(t, ok)
	assert.InDelta(t, 100.0, gm.Percentage, 1e-9)
	assert.InDelta(t, 0.0, cog.Percentage, 1e-9)

	// (4*1 + 0*3) / (4*1 + 4*3) = 25%, where the mean of the two percentages is 50%.
	assert.InDelta(t, 25.0, report.OverallScore, 1e-9)
	assert.NotEqual(t, (gm.Percentage+cog.Percentage)/2, report.OverallScore)
}

func TestGenerateReport_GuidanceBands(t *testing.T) {
	engine := newCustomEngine(t,
		domain.EvaluationQuestion{ID: "q1", Domain: domain.FINE_MOTOR, AgeInMonths: 1},
		domain.EvaluationQuestion{ID: "q2", Domain: domain.FINE_MOTOR, AgeInMonths: 1},
	)

	tests := []struct {
		name    string
		answers domain.Answers
		overall float64
		band    domain.GuidanceBand
	}{
		{"full evaluation below 60", domain.Answers{"q1": "a2", "q2": "a2"}, 50, domain.GuidanceFullEvaluation},
		{"reinforced at 62.5", domain.Answers{"q1": "a2", "q2": "a3"}, 62.5, domain.GuidanceReinforcedMonitoring},
		{"routine at 75", domain.Answers{"q1": "a3", "q2": "a3"}, 75, domain.GuidanceRoutine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.GenerateReport(tt.answers, 1)
			assert.InDelta(t, tt.overall, report.OverallScore, 1e-9)
			assert.Equal(t, guidanceFor(tt.band).nextSteps, report.NextSteps)
		})
	}
}

func TestGenerateReport_RedFlags(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.GenerateReport(domain.Answers{
		"com_name_response_12m": "not_yet",
		"soc_pointing_12m":      "emerging",
		"com_first_words_12m":   "not_yet", // not a critical-age item
	}, 12)

	require.Len(t, report.RedFlags, 1)
	assert.Contains(t, report.RedFlags[0], "12 mois")

	q, ok := engine.Catalog().Question("com_name_response_12m")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(report.RedFlags[0], q.Text))

	// Red flags never change the scores.
	ds, ok := report.DomainScore(domain.COMMUNICATION)
	require.True(t, ok)
	assert.Equal(t, 0.0, ds.Score)
}

func TestGenerateReport_RedFlagThreshold(t *testing.T) {
	scoring := domain.DefaultScoringConfig()
	scoring.RedFlagMaxScore = 1
	engine, err := NewEngine(newTestEngine(t).Catalog(), scoring)
	require.NoError(t, err)

	report := engine.GenerateReport(domain.Answers{"soc_pointing_12m": "emerging"}, 12)
	assert.Len(t, report.RedFlags, 1)
}

func TestGenerateReport_IsDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	fc := engine.FilterByAge(36)

	i := 0
	answers := answerAll(fc, func(q domain.EvaluationQuestion) string {
		i++
		return q.Options[i%len(q.Options)].Value
	})

	first, err := json.Marshal(engine.GenerateReport(answers, 36))
	require.NoError(t, err)
	for n := 0; n < 5; n++ {
		again, err := json.Marshal(engine.GenerateReport(answers, 36))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestGenerateReport_ConcurrentCallsDoNotInterfere(t *testing.T) {
	engine := newTestEngine(t)
	best := answerAll(engine.FilterByAge(48), bestOption)
	worst := answerAll(engine.FilterByAge(48), worstOption)

	done := make(chan domain.EvaluationReport, 20)
	for n := 0; n < 10; n++ {
		go func() { done <- engine.GenerateReport(best, 48) }()
		go func() { done <- engine.GenerateReport(worst, 48) }()
	}

	var high, low int
	for n := 0; n < 20; n++ {
		report := <-done
		switch report.OverallScore {
		case 100:
			high++
		case 0:
			low++
		}
	}
	assert.Equal(t, 10, high)
	assert.Equal(t, 10, low)
}

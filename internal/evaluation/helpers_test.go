package evaluation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(catalog.Default(), domain.DefaultScoringConfig())
	require.NoError(t, err)
	return engine
}

// answerAll selects, for every question of fc, the option chosen by pick.
func answerAll(fc *catalog.FilteredCatalog, pick func(q domain.EvaluationQuestion) string) domain.Answers {
	answers := domain.Answers{}
	for _, q := range fc.Questions() {
		answers[q.ID] = pick(q)
	}
	return answers
}

func bestOption(q domain.EvaluationQuestion) string {
	best := q.Options[0]
	for _, opt := range q.Options[1:] {
		if opt.Score > best.Score {
			best = opt
		}
	}
	return best.Value
}

func worstOption(q domain.EvaluationQuestion) string {
	for _, opt := range q.Options {
		if opt.Score == domain.MinOptionScore {
			return opt.Value
		}
	}
	return q.Options[0].Value
}

func ladder() []domain.EvaluationOption {
	return []domain.EvaluationOption{
		{Value: "a0", Label: "0", Score: 0},
		{Value: "a1", Label: "1", Score: 1},
		{Value: "a2", Label: "2", Score: 2},
		{Value: "a3", Label: "3", Score: 3},
		{Value: "a4", Label: "4", Score: 4},
	}
}

func testDomains() []domain.DomainConfig {
	var out []domain.DomainConfig
	for _, d := range domain.AllDomainTags() {
		out = append(out, domain.DomainConfig{Domain: d, Name: "name-" + d.String()})
	}
	return out
}

// newCustomEngine builds an engine over a small catalog with hand-picked weights.
func newCustomEngine(t *testing.T, questions ...domain.EvaluationQuestion) *Engine {
	t.Helper()
	for i := range questions {
		if questions[i].Options == nil {
			questions[i].Options = ladder()
		}
		if questions[i].Weight == 0 {
			questions[i].Weight = 1
		}
	}
	cat, err := catalog.New(testDomains(), questions)
	require.NoError(t, err)
	engine, err := NewEngine(cat, domain.DefaultScoringConfig())
	require.NoError(t, err)
	return engine
}

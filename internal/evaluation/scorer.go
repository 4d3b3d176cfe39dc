package evaluation

import (
	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// ScoreDomain computes the weighted score of one domain from the answers that
// select a valid option on a question of fc. Answers outside fc, unknown ids and
// unknown option values count as unanswered.
//
// A domain with no valid answer returns the incomplete sentinel: zero scores,
// concerning level and an explanatory recommendation. 0/0 is never reported as
// a floor score.
func (e *Engine) ScoreDomain(fc *catalog.FilteredCatalog, d domain.Domain, answers domain.Answers) domain.DomainScoreResult {
	var score, maxScore float64
	var answered, applicable int

	if fc != nil {
		fc.EachInDomain(d, func(q *domain.EvaluationQuestion) {
			applicable++
			value, ok := answers[q.ID]
			if !ok {
				return
			}
			opt, ok := q.Option(value)
			if !ok {
				return
			}
			answered++
			score += float64(opt.Score) * q.Weight
			maxScore += float64(domain.MaxOptionScore) * q.Weight
		})
	}

	if answered == 0 {
		return domain.DomainScoreResult{
			Domain:              d,
			Level:               domain.CONCERNING,
			Recommendations:     []string{IncompleteDomainRecommendation},
			ApplicableQuestions: applicable,
		}
	}

	percentage := 100 * score / maxScore
	level := e.scoring.LevelFor(percentage)

	return domain.DomainScoreResult{
		Domain:              d,
		Score:               score,
		MaxScore:            maxScore,
		Percentage:          percentage,
		Level:               level,
		Recommendations:     levelRecommendations(level),
		AnsweredQuestions:   answered,
		ApplicableQuestions: applicable,
	}
}

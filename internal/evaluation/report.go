package evaluation

import (
	"fmt"
	"math"
	"strings"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// GenerateReport filters the catalog by age and scores the answers against it.
// It is total for any age and any, possibly empty, answer set.
func (e *Engine) GenerateReport(answers domain.Answers, ageInMonths int) domain.EvaluationReport {
	return e.Report(e.FilterByAge(ageInMonths), answers)
}

// Report scores every domain of fc and aggregates the results. fc must not be nil.
//
// The overall score is weight-preserving: 100 * Σscore / Σmax across domains,
// so a domain with more answered or heavier questions weighs more than a
// sparsely answered one. It is 0 when no domain has an answer.
func (e *Engine) Report(fc *catalog.FilteredCatalog, answers domain.Answers) domain.EvaluationReport {
	tags := domain.AllDomainTags()
	report := domain.EvaluationReport{
		AgeInMonths:      fc.AgeInMonths(),
		DomainScores:     make([]domain.DomainScoreResult, 0, len(tags)),
		CriticalFindings: []string{},
		Recommendations:  []string{},
	}

	var totalScore, totalMax float64
	var concerning []string

	for _, d := range tags {
		result := e.ScoreDomain(fc, d, answers)
		report.DomainScores = append(report.DomainScores, result)
		totalScore += result.Score
		totalMax += result.MaxScore

		if result.Level == domain.CONCERNING {
			name := e.domainName(d)
			concerning = append(concerning, name)
			report.CriticalFindings = append(report.CriticalFindings, criticalFinding(name, result))
			report.Recommendations = append(report.Recommendations, result.Recommendations...)
		}
	}

	if totalMax > 0 {
		report.OverallScore = 100 * totalScore / totalMax
	}

	g := guidanceFor(e.scoring.GuidanceFor(report.OverallScore))
	report.Recommendations = append(report.Recommendations, g.recommendations...)
	report.NextSteps = append([]string{}, g.nextSteps...)
	report.RedFlags = e.redFlags(fc, answers)
	report.ClinicalNotes = clinicalNotes(report.AgeInMonths, report.OverallScore, concerning)

	return report
}

// redFlags lists critical-age milestones answered at or below the red flag
// score. They are informational and never alter scores or levels.
func (e *Engine) redFlags(fc *catalog.FilteredCatalog, answers domain.Answers) []string {
	flags := []string{}
	for _, d := range domain.AllDomainTags() {
		fc.EachInDomain(d, func(q *domain.EvaluationQuestion) {
			if !q.CriticalAge {
				return
			}
			opt, ok := q.Option(answers[q.ID])
			if !ok || opt.Score > e.scoring.RedFlagMaxScore {
				return
			}
			flags = append(flags, fmt.Sprintf("%s (attendu vers %d mois) : %s",
				q.Text, q.AgeInMonths, opt.ClinicalInterpretation))
		})
	}
	return flags
}

func (e *Engine) domainName(d domain.Domain) string {
	if cfg, ok := e.catalog.DomainConfig(d); ok {
		return cfg.Name
	}
	return d.String()
}

func criticalFinding(name string, result domain.DomainScoreResult) string {
	if result.IsIncomplete() {
		return fmt.Sprintf("%s : évaluation incomplète, aucune réponse exploitable", name)
	}
	return fmt.Sprintf("%s : niveau préoccupant (%.0f%%)", name, result.Percentage)
}

func clinicalNotes(ageInMonths int, overall float64, concerning []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Évaluation réalisée à %d mois. Score global : %d%%. ", ageInMonths, int(math.Round(overall)))
	if len(concerning) == 0 {
		b.WriteString("Aucun domaine préoccupant : tous les domaines sont dans les limites attendues.")
	} else {
		fmt.Fprintf(&b, "Domaines préoccupants : %s.", strings.Join(concerning, ", "))
	}
	return b.String()
}

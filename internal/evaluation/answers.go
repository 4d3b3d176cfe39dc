package evaluation

import (
	"sort"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// Answer issue messages
const (
	IssueUnknownQuestion = "unknown question id"
	IssueUnknownOption   = "unknown option value"
	IssueNotYetExpected  = "question not yet applicable at this age"
)

// ValidateAnswers lists every answer the scorer would ignore: unknown question
// ids, unknown option values and answers to questions whose expected age has
// not been reached. Issues are sorted by question id so the output is stable.
// The scorer itself stays lenient; callers decide whether issues are fatal.
// A nil view has no applicable questions.
func (e *Engine) ValidateAnswers(fc *catalog.FilteredCatalog, answers domain.Answers) []*domain.ValidationError {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var issues []*domain.ValidationError
	for _, id := range ids {
		value := answers[id]
		field := "answers." + id

		q, ok := e.catalog.Question(id)
		if !ok {
			issues = append(issues, domain.NewValidationError(field, IssueUnknownQuestion, id))
			continue
		}
		if _, ok := q.Option(value); !ok {
			issues = append(issues, domain.NewValidationError(field, IssueUnknownOption, value))
			continue
		}
		if fc == nil || !fc.Contains(id) {
			issues = append(issues, domain.NewValidationError(field, IssueNotYetExpected, q.AgeInMonths))
		}
	}
	return issues
}

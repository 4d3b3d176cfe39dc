package catalog

import (
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// FilteredCatalog is the part of a Catalog that applies to one evaluation.
// It is the only input the scorer accepts, so age gating always happens before
// scoring.
type FilteredCatalog struct {
	ageInMonths int
	gated       bool
	catalog     *Catalog
	indexes     []int
	byID        map[string]int
}

// FilterByAge narrows the catalog to the questions applicable at the given age.
// A negative age yields an empty view.
func (c *Catalog) FilterByAge(ageInMonths int) *FilteredCatalog {
	fc := &FilteredCatalog{
		ageInMonths: ageInMonths,
		gated:       true,
		catalog:     c,
		byID:        make(map[string]int),
	}
	for i, q := range c.questions {
		if q.AgeInMonths <= ageInMonths {
			fc.byID[q.ID] = len(fc.indexes)
			fc.indexes = append(fc.indexes, i)
		}
	}
	return fc
}

// All returns an ungated view over every question. Use it only to score
// answers without age gating.
func (c *Catalog) All() *FilteredCatalog {
	fc := &FilteredCatalog{
		ageInMonths: c.MaxAgeInMonths(),
		catalog:     c,
		byID:        make(map[string]int, len(c.questions)),
	}
	for i, q := range c.questions {
		fc.byID[q.ID] = len(fc.indexes)
		fc.indexes = append(fc.indexes, i)
	}
	return fc
}

// AgeInMonths returns the age the view was built for.
func (f *FilteredCatalog) AgeInMonths() int {
	return f.ageInMonths
}

// AgeGated reports whether the view was produced by FilterByAge.
func (f *FilteredCatalog) AgeGated() bool {
	return f.gated
}

// Catalog returns the catalog the view was built from.
func (f *FilteredCatalog) Catalog() *Catalog {
	return f.catalog
}

// Len returns the number of applicable questions.
func (f *FilteredCatalog) Len() int {
	return len(f.indexes)
}

// Questions returns the applicable questions in catalog order.
func (f *FilteredCatalog) Questions() []domain.EvaluationQuestion {
	out := make([]domain.EvaluationQuestion, 0, len(f.indexes))
	for _, i := range f.indexes {
		out = append(out, f.catalog.questions[i].Clone())
	}
	return out
}

// QuestionsInDomain returns the applicable questions of one domain.
func (f *FilteredCatalog) QuestionsInDomain(d domain.Domain) []domain.EvaluationQuestion {
	out := []domain.EvaluationQuestion{}
	f.EachInDomain(d, func(q *domain.EvaluationQuestion) {
		out = append(out, q.Clone())
	})
	return out
}

// EachInDomain calls fn for every applicable question of d without copying.
// fn must not modify the question.
func (f *FilteredCatalog) EachInDomain(d domain.Domain, fn func(q *domain.EvaluationQuestion)) {
	for _, i := range f.indexes {
		q := &f.catalog.questions[i]
		if q.Domain == d {
			fn(q)
		}
	}
}

// Contains reports whether the question id is applicable in this view.
func (f *FilteredCatalog) Contains(id string) bool {
	_, ok := f.byID[id]
	return ok
}

// Question returns an applicable question by id.
func (f *FilteredCatalog) Question(id string) (domain.EvaluationQuestion, bool) {
	idx, ok := f.byID[id]
	if !ok {
		return domain.EvaluationQuestion{}, false
	}
	return f.catalog.questions[f.indexes[idx]].Clone(), true
}

// Package catalog holds the immutable registry of developmental domains,
// screening questions and answer options, together with the age filter that
// narrows it to the items applicable to a child.
package catalog

import (
	"errors"
	"fmt"

	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// Catalog is a validated, read-only set of domains and questions. It is built
// once and shared by reference; no method mutates it.
type Catalog struct {
	domains   []domain.DomainConfig
	byDomain  map[domain.Domain]int
	questions []domain.EvaluationQuestion
	byID      map[string]int
}

// New validates the given domain configs and questions and builds a Catalog.
// Every violated invariant is reported; the returned error matches
// domain.ErrInvalidCatalog.
func New(domains []domain.DomainConfig, questions []domain.EvaluationQuestion) (*Catalog, error) {
	if errs := validate(domains, questions); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
	}

	c := &Catalog{
		domains:   make([]domain.DomainConfig, 0, len(domains)),
		byDomain:  make(map[domain.Domain]int, len(domains)),
		questions: make([]domain.EvaluationQuestion, 0, len(questions)),
		byID:      make(map[string]int, len(questions)),
	}

	// Domain configs are stored in reporting order regardless of input order.
	for _, tag := range domain.AllDomainTags() {
		for _, cfg := range domains {
			if cfg.Domain == tag {
				c.byDomain[tag] = len(c.domains)
				c.domains = append(c.domains, cfg.Clone())
			}
		}
	}

	for _, q := range questions {
		c.byID[q.ID] = len(c.questions)
		c.questions = append(c.questions, q.Clone())
	}

	return c, nil
}

// Default builds the bundled catalog. The bundled data is checked by tests, so a
// failure here is a programming error.
func Default() *Catalog {
	c, err := New(bundledDomains(), bundledQuestions())
	if err != nil {
		panic(fmt.Sprintf("bundled catalog is invalid: %v", err))
	}
	return c
}

// DomainConfig returns the metadata of a domain. It is total over valid tags.
func (c *Catalog) DomainConfig(d domain.Domain) (domain.DomainConfig, bool) {
	idx, ok := c.byDomain[d]
	if !ok {
		return domain.DomainConfig{}, false
	}
	return c.domains[idx].Clone(), true
}

// AllDomains returns every domain config in reporting order.
func (c *Catalog) AllDomains() []domain.DomainConfig {
	out := make([]domain.DomainConfig, len(c.domains))
	for i, cfg := range c.domains {
		out[i] = cfg.Clone()
	}
	return out
}

// Question returns the question with the given id.
func (c *Catalog) Question(id string) (domain.EvaluationQuestion, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.EvaluationQuestion{}, false
	}
	return c.questions[idx].Clone(), true
}

// Questions returns every question in catalog order.
func (c *Catalog) Questions() []domain.EvaluationQuestion {
	return c.collect(func(domain.EvaluationQuestion) bool { return true })
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// QuestionsInDomain returns all questions tagged with d, regardless of age.
func (c *Catalog) QuestionsInDomain(d domain.Domain) []domain.EvaluationQuestion {
	return c.collect(func(q domain.EvaluationQuestion) bool { return q.Domain == d })
}

// QuestionsApplicableAt returns every question whose expected age has been
// reached. The rule is cumulative: the set only grows with age.
func (c *Catalog) QuestionsApplicableAt(ageInMonths int) []domain.EvaluationQuestion {
	return c.collect(func(q domain.EvaluationQuestion) bool { return q.AgeInMonths <= ageInMonths })
}

// CriticalQuestionsApplicableAt returns the applicable questions flagged as
// critical-age milestones.
func (c *Catalog) CriticalQuestionsApplicableAt(ageInMonths int) []domain.EvaluationQuestion {
	return c.collect(func(q domain.EvaluationQuestion) bool {
		return q.CriticalAge && q.AgeInMonths <= ageInMonths
	})
}

// MaxAgeInMonths returns the highest expected age in the catalog.
func (c *Catalog) MaxAgeInMonths() int {
	oldest := 0
	for _, q := range c.questions {
		if q.AgeInMonths > oldest {
			oldest = q.AgeInMonths
		}
	}
	return oldest
}

func (c *Catalog) collect(keep func(domain.EvaluationQuestion) bool) []domain.EvaluationQuestion {
	out := []domain.EvaluationQuestion{}
	for _, q := range c.questions {
		if keep(q) {
			out = append(out, q.Clone())
		}
	}
	return out
}

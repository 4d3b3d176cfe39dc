// Package evaluation implements the developmental scoring engine: the per-domain
// weighted scorer and the report generator that aggregates domain results into
// an overall score, critical findings, recommendations and next steps.
//
// Every operation is a pure function of the catalog, the scoring table and the
// caller's inputs. The only state the engine keeps is a bounded cache of
// age-filtered catalog views, which are immutable; the engine may be shared
// freely between goroutines.
package evaluation

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/achour007/kidaily-web-sub001/internal/catalog"
	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// viewCacheSize covers every month of the first six years with room to spare.
const viewCacheSize = 128

// Engine scores answer sets against a catalog
type Engine struct {
	catalog *catalog.Catalog
	scoring domain.ScoringConfig
	views   *lru.Cache[int, *catalog.FilteredCatalog]
}

var _ domain.ReportGenerator = (*Engine)(nil)

// NewEngine creates an engine over the given catalog and scoring table
func NewEngine(cat *catalog.Catalog, scoring domain.ScoringConfig) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: catalog is required", domain.ErrInvalidCatalog)
	}
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	views, err := lru.New[int, *catalog.FilteredCatalog](viewCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create view cache: %w", err)
	}
	return &Engine{
		catalog: cat,
		scoring: scoring,
		views:   views,
	}, nil
}

// Catalog returns the catalog the engine scores against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Scoring returns the scoring table in use
func (e *Engine) Scoring() domain.ScoringConfig {
	return e.scoring
}

// FilterByAge narrows the engine's catalog to the given age. Views are
// immutable, so a view built for one evaluation is reused by the next one at
// the same age.
func (e *Engine) FilterByAge(ageInMonths int) *catalog.FilteredCatalog {
	if fc, ok := e.views.Get(ageInMonths); ok {
		return fc
	}
	fc := e.catalog.FilterByAge(ageInMonths)
	e.views.Add(ageInMonths, fc)
	return fc
}

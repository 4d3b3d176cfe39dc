package catalog

import (
	"fmt"

	"github.com/achour007/kidaily-web-sub001/internal/domain"
)

// validate checks every catalog invariant and returns all violations found.
func validate(domains []domain.DomainConfig, questions []domain.EvaluationQuestion) []error {
	var errs []error

	seenDomains := make(map[domain.Domain]bool, len(domains))
	for _, cfg := range domains {
		if !cfg.Domain.IsValid() {
			errs = append(errs, domain.NewValidationError("domains", "unknown domain tag", cfg.Domain))
			continue
		}
		if seenDomains[cfg.Domain] {
			errs = append(errs, domain.NewValidationError("domains", "duplicate domain config", cfg.Domain))
		}
		seenDomains[cfg.Domain] = true
		if cfg.Name == "" {
			errs = append(errs, domain.NewValidationError("domains."+cfg.Domain.String()+".name", "display name is required", cfg.Name))
		}
	}
	for _, tag := range domain.AllDomainTags() {
		if !seenDomains[tag] {
			errs = append(errs, domain.NewValidationError("domains", "missing domain config", tag))
		}
	}

	seenIDs := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, domain.NewValidationError("questions.id", "question id is required", q.Text))
			continue
		}
		if seenIDs[q.ID] {
			errs = append(errs, domain.NewValidationError("questions."+q.ID, "duplicate question id", q.ID))
		}
		seenIDs[q.ID] = true
		errs = append(errs, validateQuestion(q)...)
	}

	return errs
}

func validateQuestion(q domain.EvaluationQuestion) []error {
	var errs []error
	field := "questions." + q.ID

	if !q.Domain.IsValid() {
		errs = append(errs, domain.NewValidationError(field+".domain", "unknown domain tag", q.Domain))
	}
	if q.AgeInMonths < 0 {
		errs = append(errs, domain.NewValidationError(field+".age_in_months", "must not be negative", q.AgeInMonths))
	}
	if q.Weight < domain.MinQuestionWeight || q.Weight > domain.MaxQuestionWeight {
		errs = append(errs, domain.NewValidationError(field+".weight",
			fmt.Sprintf("must be within [%.1f, %.1f]", domain.MinQuestionWeight, domain.MaxQuestionWeight), q.Weight))
	}
	if len(q.Options) < domain.MinOptionsPerItem {
		errs = append(errs, domain.NewValidationError(field+".options",
			fmt.Sprintf("at least %d options are required", domain.MinOptionsPerItem), len(q.Options)))
	}

	values := make(map[string]bool, len(q.Options))
	var hasFloor, hasCeiling bool
	for _, opt := range q.Options {
		if values[opt.Value] {
			errs = append(errs, domain.NewValidationError(field+".options", "duplicate option value", opt.Value))
		}
		values[opt.Value] = true

		if opt.Score < domain.MinOptionScore || opt.Score > domain.MaxOptionScore {
			errs = append(errs, domain.NewValidationError(field+".options."+opt.Value+".score",
				fmt.Sprintf("must be within [%d, %d]", domain.MinOptionScore, domain.MaxOptionScore), opt.Score))
		}
		hasFloor = hasFloor || opt.Score == domain.MinOptionScore
		hasCeiling = hasCeiling || opt.Score == domain.MaxOptionScore
	}
	if len(q.Options) > 0 && !hasFloor {
		errs = append(errs, domain.NewValidationError(field+".options", "an option scoring 0 is required", q.ID))
	}
	if len(q.Options) > 0 && !hasCeiling {
		errs = append(errs, domain.NewValidationError(field+".options", "an option scoring 4 is required", q.ID))
	}

	return errs
}

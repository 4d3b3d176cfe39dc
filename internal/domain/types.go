// Package domain contains the core entities of the developmental evaluation engine:
// developmental domains, screening questions and their answer options, and the
// per-domain and overall results computed from a caregiver's answers.
//
// The scoring model follows standardized pediatric screening instruments
// (ASQ-3 style weighted item scores). Reference: Squires J, Bricker D.
// Ages & Stages Questionnaires, Third Edition (ASQ-3). Paul H. Brookes, 2009.
package domain

import (
	"errors"
)

// Domain identifies one of the eight developmental areas screened by the engine.
// The set is closed; tags are defined once and never created at runtime.
type Domain string

const (
	COMMUNICATION        Domain = "communication"
	GROSS_MOTOR          Domain = "gross_motor"
	FINE_MOTOR           Domain = "fine_motor"
	PROBLEM_SOLVING      Domain = "problem_solving"
	PERSONAL_SOCIAL      Domain = "personal_social"
	ADAPTIVE_BEHAVIOR    Domain = "adaptive_behavior"
	COGNITIVE            Domain = "cognitive"
	EMOTIONAL_REGULATION Domain = "emotional_regulation"
)

// AllDomainTags returns every domain tag in reporting order.
func AllDomainTags() []Domain {
	return []Domain{
		COMMUNICATION,
		GROSS_MOTOR,
		FINE_MOTOR,
		PROBLEM_SOLVING,
		PERSONAL_SOCIAL,
		ADAPTIVE_BEHAVIOR,
		COGNITIVE,
		EMOTIONAL_REGULATION,
	}
}

// IsValid reports whether d is one of the eight known domain tags.
func (d Domain) IsValid() bool {
	switch d {
	case COMMUNICATION, GROSS_MOTOR, FINE_MOTOR, PROBLEM_SOLVING,
		PERSONAL_SOCIAL, ADAPTIVE_BEHAVIOR, COGNITIVE, EMOTIONAL_REGULATION:
		return true
	default:
		return false
	}
}

// String returns the string representation of the domain tag.
func (d Domain) String() string {
	return string(d)
}

// ParseDomain converts a raw tag into a Domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.IsValid() {
		return "", ErrInvalidDomain
	}
	return d, nil
}

// Level is the four-way risk classification derived from a domain percentage.
type Level string

const (
	EXCELLENT  Level = "excellent"
	NORMAL     Level = "normal"
	DELAYED    Level = "delayed"
	CONCERNING Level = "concerning"
)

// Validation errors for evaluation input and catalog integrity
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidDomain     = errors.New("invalid developmental domain")
	ErrInvalidLevel      = errors.New("invalid development level")
	ErrInvalidCatalog    = errors.New("invalid evaluation catalog")
	ErrInvalidAnswers    = errors.New("invalid answer set")
	ErrInvalidScoring    = errors.New("invalid scoring configuration")
	ErrNegativeAgeMonths = errors.New("age in months must not be negative")
)

// IsValid reports whether the level is one of the four known levels.
func (l Level) IsValid() bool {
	switch l {
	case EXCELLENT, NORMAL, DELAYED, CONCERNING:
		return true
	default:
		return false
	}
}

// String returns the string representation of the level.
func (l Level) String() string {
	return string(l)
}

// Label returns the caregiver-facing label of the level.
func (l Level) Label() string {
	switch l {
	case EXCELLENT:
		return "Excellent"
	case NORMAL:
		return "Normal"
	case DELAYED:
		return "Retard léger"
	case CONCERNING:
		return "Préoccupant"
	default:
		return "Inconnu"
	}
}

// RequiresFollowUp reports whether the level calls for more than routine monitoring.
func (l Level) RequiresFollowUp() bool {
	return l == DELAYED || l == CONCERNING
}

// LogFields returns structured logging fields for the level.
func (l Level) LogFields() map[string]any {
	return map[string]any{
		"level":              string(l),
		"level_label":        l.Label(),
		"requires_follow_up": l.RequiresFollowUp(),
	}
}

package domain

// DomainConfig carries the display metadata of a developmental domain
type DomainConfig struct {
	Domain                 Domain   `json:"domain"`
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	Icon                   string   `json:"icon"`
	CriticalMilestones     []string `json:"critical_milestones"`
	RedFlags               []string `json:"red_flags"`
	InterventionGuidelines []string `json:"intervention_guidelines"`
}

// EvaluationOption is one selectable answer for a question
type EvaluationOption struct {
	Value                  string `json:"value"`
	Label                  string `json:"label"`
	Score                  int    `json:"score"` // 0 to MaxOptionScore
	ClinicalInterpretation string `json:"clinical_interpretation"`
	Percentile             *int   `json:"percentile,omitempty"` // display only
}

// EvaluationQuestion is a single screening item of the catalog.
// Source and EvidenceLevel are provenance carried through for display; they never
// take part in scoring.
type EvaluationQuestion struct {
	ID            string             `json:"id"`
	Text          string             `json:"text"`
	Domain        Domain             `json:"domain"`
	Subdomain     string             `json:"subdomain"`
	AgeInMonths   int                `json:"age_in_months"`
	CriticalAge   bool               `json:"critical_age"`
	Options       []EvaluationOption `json:"options"`
	Weight        float64            `json:"weight"`
	Source        string             `json:"source"`
	EvidenceLevel string             `json:"evidence_level"`
}

// Option returns the option with the given value.
func (q EvaluationQuestion) Option(value string) (EvaluationOption, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return EvaluationOption{}, false
}

// Clone returns a deep copy of the question so callers cannot alter catalog data.
func (q EvaluationQuestion) Clone() EvaluationQuestion {
	out := q
	out.Options = make([]EvaluationOption, len(q.Options))
	for i, opt := range q.Options {
		out.Options[i] = opt
		if opt.Percentile != nil {
			p := *opt.Percentile
			out.Options[i].Percentile = &p
		}
	}
	return out
}

// Clone returns a deep copy of the domain configuration.
func (c DomainConfig) Clone() DomainConfig {
	out := c
	out.CriticalMilestones = append([]string(nil), c.CriticalMilestones...)
	out.RedFlags = append([]string(nil), c.RedFlags...)
	out.InterventionGuidelines = append([]string(nil), c.InterventionGuidelines...)
	return out
}

// Answers maps a question id to the value of the selected option.
// Unknown ids and values are treated as unanswered by the scorer.
type Answers map[string]string

// DomainScoreResult is the computed score of one domain. It is produced fresh on
// every call and never cached.
type DomainScoreResult struct {
	Domain              Domain   `json:"domain"`
	Score               float64  `json:"score"`
	MaxScore            float64  `json:"max_score"`
	Percentage          float64  `json:"percentage"`
	Level               Level    `json:"level"`
	Recommendations     []string `json:"recommendations"`
	AnsweredQuestions   int      `json:"answered_questions"`
	ApplicableQuestions int      `json:"applicable_questions"`
}

// IsIncomplete reports whether the result is the no-answer sentinel.
func (r DomainScoreResult) IsIncomplete() bool {
	return r.AnsweredQuestions == 0
}

// EvaluationReport is the full result of an evaluation. It has no identity and
// carries no timestamp: identical inputs yield identical reports.
type EvaluationReport struct {
	AgeInMonths      int                 `json:"age_in_months"`
	OverallScore     float64             `json:"overall_score"`
	DomainScores     []DomainScoreResult `json:"domain_scores"`
	CriticalFindings []string            `json:"critical_findings"`
	RedFlags         []string            `json:"red_flags"`
	Recommendations  []string            `json:"recommendations"`
	NextSteps        []string            `json:"next_steps"`
	ClinicalNotes    string              `json:"clinical_notes"`
}

// DomainScore returns the result computed for the given domain.
func (r *EvaluationReport) DomainScore(d Domain) (DomainScoreResult, bool) {
	for _, ds := range r.DomainScores {
		if ds.Domain == d {
			return ds, true
		}
	}
	return DomainScoreResult{}, false
}

// ConcerningDomains returns the domains reported at the concerning level, in report order.
func (r *EvaluationReport) ConcerningDomains() []Domain {
	var out []Domain
	for _, ds := range r.DomainScores {
		if ds.Level == CONCERNING {
			out = append(out, ds.Domain)
		}
	}
	return out
}

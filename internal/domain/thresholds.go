package domain

import (
	"fmt"
)

// Catalog invariants
const (
	MinOptionScore    = 0
	MaxOptionScore    = 4
	MinQuestionWeight = 1.0
	MaxQuestionWeight = 3.0
	MinOptionsPerItem = 2
)

// Default level bands, inclusive on their lower bound
const (
	DefaultExcellentMin = 85.0
	DefaultNormalMin    = 70.0
	DefaultDelayedMin   = 50.0
)

// Default report guidance bands on the overall score
const (
	DefaultFullEvaluationBelow       = 60.0
	DefaultReinforcedMonitoringBelow = 75.0
)

// DefaultRedFlagMaxScore is the highest option score on a critical-age question
// that is still reported as a red flag.
const DefaultRedFlagMaxScore = 0

// ScoringConfig is the single table of thresholds used by the scorer and the
// report generator.
type ScoringConfig struct {
	ExcellentMin              float64 `mapstructure:"excellent_min" json:"excellent_min"`
	NormalMin                 float64 `mapstructure:"normal_min" json:"normal_min"`
	DelayedMin                float64 `mapstructure:"delayed_min" json:"delayed_min"`
	FullEvaluationBelow       float64 `mapstructure:"full_evaluation_below" json:"full_evaluation_below"`
	ReinforcedMonitoringBelow float64 `mapstructure:"reinforced_monitoring_below" json:"reinforced_monitoring_below"`
	RedFlagMaxScore           int     `mapstructure:"red_flag_max_score" json:"red_flag_max_score"`
}

// DefaultScoringConfig returns the reference thresholds.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ExcellentMin:              DefaultExcellentMin,
		NormalMin:                 DefaultNormalMin,
		DelayedMin:                DefaultDelayedMin,
		FullEvaluationBelow:       DefaultFullEvaluationBelow,
		ReinforcedMonitoringBelow: DefaultReinforcedMonitoringBelow,
		RedFlagMaxScore:           DefaultRedFlagMaxScore,
	}
}

// Validate checks that the bands are ordered and lie within [0, 100]
func (c ScoringConfig) Validate() error {
	if c.DelayedMin <= 0 || c.ExcellentMin > 100 {
		return fmt.Errorf("%w: level bands must lie within (0, 100], got delayed=%v excellent=%v",
			ErrInvalidScoring, c.DelayedMin, c.ExcellentMin)
	}
	if !(c.DelayedMin < c.NormalMin && c.NormalMin < c.ExcellentMin) {
		return fmt.Errorf("%w: level bands must be strictly ascending (delayed=%v normal=%v excellent=%v)",
			ErrInvalidScoring, c.DelayedMin, c.NormalMin, c.ExcellentMin)
	}
	if c.FullEvaluationBelow <= 0 || c.ReinforcedMonitoringBelow > 100 {
		return fmt.Errorf("%w: guidance bands must lie within (0, 100], got full=%v reinforced=%v",
			ErrInvalidScoring, c.FullEvaluationBelow, c.ReinforcedMonitoringBelow)
	}
	if c.FullEvaluationBelow >= c.ReinforcedMonitoringBelow {
		return fmt.Errorf("%w: full evaluation band (%v) must be below reinforced monitoring band (%v)",
			ErrInvalidScoring, c.FullEvaluationBelow, c.ReinforcedMonitoringBelow)
	}
	if c.RedFlagMaxScore < MinOptionScore || c.RedFlagMaxScore >= MaxOptionScore {
		return fmt.Errorf("%w: red flag max score must be within [%d, %d), got %d",
			ErrInvalidScoring, MinOptionScore, MaxOptionScore, c.RedFlagMaxScore)
	}
	return nil
}

// LevelFor maps a percentage onto its level. The bands are total and
// non-overlapping across [0, 100].
func (c ScoringConfig) LevelFor(percentage float64) Level {
	switch {
	case percentage >= c.ExcellentMin:
		return EXCELLENT
	case percentage >= c.NormalMin:
		return NORMAL
	case percentage >= c.DelayedMin:
		return DELAYED
	default:
		return CONCERNING
	}
}

// GuidanceBand classifies an overall score for global recommendations.
type GuidanceBand string

const (
	GuidanceFullEvaluation       GuidanceBand = "full_evaluation"
	GuidanceReinforcedMonitoring GuidanceBand = "reinforced_monitoring"
	GuidanceRoutine              GuidanceBand = "routine"
)

// GuidanceFor maps an overall score onto its guidance band.
func (c ScoringConfig) GuidanceFor(overall float64) GuidanceBand {
	switch {
	case overall < c.FullEvaluationBelow:
		return GuidanceFullEvaluation
	case overall < c.ReinforcedMonitoringBelow:
		return GuidanceReinforcedMonitoring
	default:
		return GuidanceRoutine
	}
}

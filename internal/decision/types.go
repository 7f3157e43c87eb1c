package decision

// #region imports
import (
	"time"

	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/rules"
)

// #endregion

// #region performance-category

// PerformanceCategory is the threshold verdict on the current sample.
type PerformanceCategory string

const (
	CategoryReduce   PerformanceCategory = "reduce"
	CategoryIncrease PerformanceCategory = "increase"
	CategoryNone     PerformanceCategory = "none"
)

// #endregion performance-category

// #region source-signals

// SourceSignals is the full provenance of a decision: which rules fired,
// what the threshold check said, and any feedback that was consumed.
type SourceSignals struct {
	Rules       []rules.Triggered   `json:"rules,omitempty"`
	Performance PerformanceCategory `json:"performance"`
	Feedback    *feedback.Directive `json:"feedback,omitempty"`
}

// #endregion source-signals

// #region decision

// Decision is one committed adaptation: the merged effect set plus
// provenance. Outcome fields start unknown and are labeled exactly once,
// when the next sample arrives.
type Decision struct {
	ID      string            `json:"id"`
	Signals SourceSignals     `json:"signals"`
	Effects effects.EffectSet `json:"effects"`

	// SuccessRate is the sample's success rate at decision time, the
	// baseline for judging the decision's outcome later.
	SuccessRate float64   `json:"success_rate"`
	Timestamp   time.Time `json:"timestamp"`

	OutcomeKnown   bool `json:"outcome_known"`
	OutcomeSuccess bool `json:"outcome_success"`
}

// #endregion decision

package telemetry

// #region imports
import (
	"time"

	"go.uber.org/zap"

	"github.com/ableworks/adaptive-trainer/internal/effects"
)

// #endregion

// #region raw-counters

// RawTaskCounters are the unnormalized counters the task runner reports
// when a task completes. Missing counters are zero.
type RawTaskCounters struct {
	Attempts       int           `json:"attempts"`
	Successes      int           `json:"successes"`
	Errors         int           `json:"errors"`
	Interactions   int           `json:"interactions"`
	StepsCompleted int           `json:"steps_completed"`
	TotalSteps     int           `json:"total_steps"`
	Duration       time.Duration `json:"duration"`

	Difficulty effects.Difficulty      `json:"difficulty,omitempty"`
	Assistance effects.AssistanceLevel `json:"assistance,omitempty"`
}

// #endregion raw-counters

// #region sample

// Sample is a normalized performance snapshot for one completed task.
// All ratio fields are in [0, 1]. Immutable after creation.
type Sample struct {
	SuccessRate    float64                 `json:"success_rate"`
	ErrorRate      float64                 `json:"error_rate"`
	Efficiency     float64                 `json:"efficiency"`
	CompletionTime time.Duration           `json:"completion_time"`
	Difficulty     effects.Difficulty      `json:"difficulty"`
	Assistance     effects.AssistanceLevel `json:"assistance"`
	Timestamp      time.Time               `json:"timestamp"`
}

// Neutral returns a mid-scale sample used when a decision must run before
// any task has completed (periodic triggers, feedback-only sessions).
func Neutral(now time.Time) Sample {
	return Sample{
		SuccessRate: 0.5,
		Efficiency:  0.5,
		Difficulty:  effects.DifficultyMedium,
		Assistance:  effects.AssistanceModerate,
		Timestamp:   now,
	}
}

// #endregion sample

// #region aggregator

// Aggregator normalizes raw task counters into Samples. It never fails:
// absent counters degrade to zero rates, never NaN.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator creates an Aggregator. logger may be nil.
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger}
}

// Summarize converts counters into a Sample.
// errorRate = errors / max(interactions, 1); efficiency = stepsCompleted /
// max(totalSteps, 1); successRate = successes / max(attempts, 1).
func (a *Aggregator) Summarize(c RawTaskCounters) Sample {
	s := Sample{
		SuccessRate:    safeRatio(c.Successes, c.Attempts),
		ErrorRate:      safeRatio(c.Errors, c.Interactions),
		Efficiency:     safeRatio(c.StepsCompleted, c.TotalSteps),
		CompletionTime: c.Duration,
		Difficulty:     c.Difficulty,
		Assistance:     c.Assistance,
		Timestamp:      time.Now().UTC(),
	}
	if s.CompletionTime < 0 {
		s.CompletionTime = 0
	}
	if s.Difficulty == "" {
		s.Difficulty = effects.DifficultyMedium
	}
	if s.Assistance == "" {
		s.Assistance = effects.AssistanceModerate
	}

	a.logger.Debug("summarized task counters",
		zap.Float64("success_rate", s.SuccessRate),
		zap.Float64("error_rate", s.ErrorRate),
		zap.Float64("efficiency", s.Efficiency),
		zap.Duration("completion_time", s.CompletionTime))
	return s
}

// #endregion aggregator

// #region helpers

// safeRatio divides num by den with a floor of 1 on the denominator and
// clamps into [0, 1]. Zero counters yield 0, never NaN.
func safeRatio(num, den int) float64 {
	if den < 1 {
		den = 1
	}
	if num < 0 {
		num = 0
	}
	r := float64(num) / float64(den)
	if r > 1 {
		return 1
	}
	return r
}

// #endregion helpers

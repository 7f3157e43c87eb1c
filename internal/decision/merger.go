package decision

// #region imports
import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/profile"
	"github.com/ableworks/adaptive-trainer/internal/rules"
	"github.com/ableworks/adaptive-trainer/internal/telemetry"
)

// #endregion

// #region thresholds

const (
	// reduceBelow: success rates under this trigger a difficulty reduction.
	reduceBelow = 0.3
	// increaseAbove: success rates over this trigger a difficulty increase.
	increaseAbove = 0.8
)

// #endregion thresholds

// #region merger

// Merger combines rule-engine output, the performance-threshold verdict,
// and any pending feedback into one coherent decision. The precedence
// order is fixed: ability rules (ascending priority) < performance
// overlay < feedback overlay.
type Merger struct {
	engine *rules.Engine
	logger *zap.Logger
}

// NewMerger creates a Merger around the given rule engine.
func NewMerger(engine *rules.Engine, logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{engine: engine, logger: logger}
}

// #endregion merger

// #region decide

// Decide runs the full merge for one trigger. Pure: no I/O, no shared
// state; appending to the ledger and dispatching are the caller's final
// step.
func (m *Merger) Decide(p profile.Profile, sample telemetry.Sample, pending *feedback.Directive) Decision {
	p = p.Clamp()

	// 1. Performance threshold check.
	category := Categorize(sample)

	// 2. Ability-rule merge, ascending priority, stable within a rank so
	// declaration order breaks ties (later declared wins).
	triggered := m.engine.Evaluate(p)
	ordered := make([]rules.Triggered, len(triggered))
	copy(ordered, triggered)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority.Rank() < ordered[j].Priority.Rank()
	})

	var merged effects.EffectSet
	for _, tr := range ordered {
		merged = effects.Overlay(merged, tr.Effects)
	}

	// 3. Performance overlay: the current-behavior signal outranks static
	// ability rules, but only for task difficulty and assistance level.
	switch category {
	case CategoryReduce:
		merged.Tasks.Difficulty = effects.DifficultyOf(effects.DifficultyEasy)
		merged.Assistance.Level = effects.AssistanceOf(effects.AssistanceExtensive)
	case CategoryIncrease:
		merged.Tasks.Difficulty = effects.DifficultyOf(effects.DifficultyHard)
		merged.Assistance.Level = effects.AssistanceOf(effects.AssistanceMinimal)
	}

	// 4. Feedback overlay: the most recent, highest-trust signal wins every
	// field it addresses.
	if pending != nil {
		if pending.TooHard() {
			merged.Tasks.Difficulty = effects.DifficultyOf(effects.DifficultyEasy)
			merged.Assistance.Level = effects.AssistanceOf(effects.AssistanceExtensive)
		} else if pending.TooEasy() {
			merged.Tasks.Difficulty = effects.DifficultyOf(effects.DifficultyHard)
			merged.Assistance.Level = effects.AssistanceOf(effects.AssistanceMinimal)
		}
		if pending.Frustrated() {
			merged.Assistance.Level = effects.AssistanceOf(effects.AssistanceExtensive)
		}
	}

	d := Decision{
		ID: uuid.New().String(),
		Signals: SourceSignals{
			Rules:       triggered,
			Performance: category,
			Feedback:    pending,
		},
		Effects:     merged,
		SuccessRate: sample.SuccessRate,
		Timestamp:   time.Now().UTC(),
	}

	m.logger.Info("merged decision",
		zap.String("decision", d.ID),
		zap.String("category", string(category)),
		zap.Int("rules", len(triggered)),
		zap.Bool("feedback", pending != nil))
	return d
}

// #endregion decide

// #region categorize

// Categorize applies the success-rate thresholds to a sample.
func Categorize(sample telemetry.Sample) PerformanceCategory {
	switch {
	case sample.SuccessRate < reduceBelow:
		return CategoryReduce
	case sample.SuccessRate > increaseAbove:
		return CategoryIncrease
	default:
		return CategoryNone
	}
}

// #endregion categorize

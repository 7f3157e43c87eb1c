package rules

// #region imports
import (
	"go.uber.org/zap"

	"github.com/ableworks/adaptive-trainer/internal/profile"
)

// #endregion

// #region engine

// Engine evaluates a fixed rule table against profile snapshots.
// Identical profiles always yield the same triggered list in the same order.
type Engine struct {
	rules  []Rule
	logger *zap.Logger
}

// NewEngine creates an Engine backed by the builtin rule table.
func NewEngine(logger *zap.Logger) *Engine {
	return NewEngineWithRules(Builtin(), logger)
}

// NewEngineWithRules creates an Engine with a custom rule table.
// The table is evaluated in slice order.
func NewEngineWithRules(table []Rule, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rules: table, logger: logger}
}

// #endregion engine

// #region evaluate

// Evaluate returns every rule whose condition holds, in declaration order.
// A rule whose condition panics is skipped and contributes no effects; the
// remaining rules still evaluate (isolate-and-continue).
func (e *Engine) Evaluate(p profile.Profile) []Triggered {
	var triggered []Triggered
	for _, r := range e.rules {
		if e.conditionHolds(r, p) {
			triggered = append(triggered, Triggered{
				Name:     r.Name,
				Priority: r.Priority,
				Effects:  r.Effects,
			})
		}
	}
	return triggered
}

func (e *Engine) conditionHolds(r Rule, p profile.Profile) (holds bool) {
	defer func() {
		if rec := recover(); rec != nil {
			holds = false
			e.logger.Warn("rule condition panicked, skipping rule",
				zap.String("rule", r.Name),
				zap.Any("panic", rec))
		}
	}()
	if r.Condition == nil {
		return false
	}
	return r.Condition(p)
}

// #endregion evaluate

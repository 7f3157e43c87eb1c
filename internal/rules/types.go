package rules

// #region imports
import (
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/profile"
)

// #endregion

// #region priority

// Priority orders rules for conflict resolution: higher-priority rules
// overwrite lower-priority rules on shared effect fields.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the merge rank of the priority; unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// #endregion priority

// #region rule

// Rule is one static, ability-conditioned adaptation. Rules are
// configuration: evaluated every decision, never mutated at runtime.
type Rule struct {
	Name      string
	Priority  Priority
	Condition func(profile.Profile) bool
	Effects   effects.EffectSet
}

// #endregion rule

// #region triggered

// Triggered is a rule whose condition held for the current profile, carried
// into the decision's provenance.
type Triggered struct {
	Name     string            `json:"name"`
	Priority Priority          `json:"priority"`
	Effects  effects.EffectSet `json:"effects"`
}

// #endregion triggered

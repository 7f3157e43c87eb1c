package replay

// #region imports
import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ableworks/adaptive-trainer/internal/controller"
	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/effects"
)

// #endregion

// #region result-types

// Result captures the decision produced by replaying one interaction.
type Result struct {
	ID         string
	DecisionID string
	Category   decision.PerformanceCategory
	Rules      []string
	Effects    effects.EffectSet
}

// Summary aggregates a replay run.
type Summary struct {
	Interactions  int
	Reduce        int
	Increase      int
	None          int
	Effectiveness float64
}

// Mismatch describes one failed expectation.
type Mismatch struct {
	ID    string
	Field string
	Want  string
	Got   string
}

// #endregion result-types

// #region run

// Run replays a fixture through a fresh in-memory controller, one decision
// per interaction, and returns the per-interaction results plus aggregate
// stats. No persistence, no collaborators: the run is deterministic given
// the fixture.
func Run(f Fixture, logger *zap.Logger) ([]Result, Summary) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctrl := controller.New(f.Profile.UserID, controller.Options{
		Profiles: controller.StaticProfile{Profile: f.Profile},
		Logger:   logger,
	})

	results := make([]Result, 0, len(f.Interactions))
	var summary Summary

	for _, inter := range f.Interactions {
		var d decision.Decision
		switch inter.Kind {
		case KindTask:
			if inter.Counters == nil {
				logger.Warn("task interaction missing counters, treating as tick",
					zap.String("id", inter.ID))
				d = ctrl.OnTick()
				break
			}
			d = ctrl.OnTaskCompleted(*inter.Counters)
		case KindFeedback:
			if inter.Feedback == nil {
				logger.Warn("feedback interaction missing submission, treating as tick",
					zap.String("id", inter.ID))
				d = ctrl.OnTick()
				break
			}
			d = ctrl.OnFeedback(*inter.Feedback)
		default:
			d = ctrl.OnTick()
		}

		ruleNames := make([]string, 0, len(d.Signals.Rules))
		for _, tr := range d.Signals.Rules {
			ruleNames = append(ruleNames, tr.Name)
		}
		results = append(results, Result{
			ID:         inter.ID,
			DecisionID: d.ID,
			Category:   d.Signals.Performance,
			Rules:      ruleNames,
			Effects:    d.Effects,
		})

		summary.Interactions++
		switch d.Signals.Performance {
		case decision.CategoryReduce:
			summary.Reduce++
		case decision.CategoryIncrease:
			summary.Increase++
		default:
			summary.None++
		}
	}

	summary.Effectiveness = ctrl.Effectiveness()
	return results, summary
}

// #endregion run

// #region verify

// Verify checks results against the fixture's expectations and returns
// every mismatch. An expectation whose ID has no result is a mismatch.
func Verify(results []Result, expected []Expectation) []Mismatch {
	byID := make(map[string]Result, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	var mismatches []Mismatch
	for _, exp := range expected {
		r, ok := byID[exp.ID]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				ID: exp.ID, Field: "result", Want: "present", Got: "missing",
			})
			continue
		}
		if exp.Category != "" && r.Category != exp.Category {
			mismatches = append(mismatches, Mismatch{
				ID: exp.ID, Field: "category",
				Want: string(exp.Category), Got: string(r.Category),
			})
		}
		if exp.Difficulty != nil {
			got := "<unset>"
			if r.Effects.Tasks.Difficulty != nil {
				got = string(*r.Effects.Tasks.Difficulty)
			}
			if got != string(*exp.Difficulty) {
				mismatches = append(mismatches, Mismatch{
					ID: exp.ID, Field: "tasks.difficulty",
					Want: string(*exp.Difficulty), Got: got,
				})
			}
		}
		if exp.Assistance != nil {
			got := "<unset>"
			if r.Effects.Assistance.Level != nil {
				got = string(*r.Effects.Assistance.Level)
			}
			if got != string(*exp.Assistance) {
				mismatches = append(mismatches, Mismatch{
					ID: exp.ID, Field: "assistance.level",
					Want: string(*exp.Assistance), Got: got,
				})
			}
		}
	}
	return mismatches
}

// String renders a mismatch for CLI output.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s want %s, got %s", m.ID, m.Field, m.Want, m.Got)
}

// #endregion verify

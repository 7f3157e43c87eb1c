package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/profile"
	"github.com/ableworks/adaptive-trainer/internal/telemetry"
)

// #endregion

// #region fixture-types

// Kind discriminates the recorded trigger types.
type Kind string

const (
	KindTask     Kind = "task"
	KindFeedback Kind = "feedback"
	KindTick     Kind = "tick"
)

// Interaction is one recorded trigger. Exactly one payload field should be
// set, matching Kind; tick interactions carry none.
type Interaction struct {
	ID       string                     `json:"id"`
	Kind     Kind                       `json:"kind"`
	Counters *telemetry.RawTaskCounters `json:"counters,omitempty"`
	Feedback *feedback.RawSubmission    `json:"feedback,omitempty"`
}

// Expectation is the per-interaction assertion for a replay run. Nil
// fields are not checked.
type Expectation struct {
	ID         string                       `json:"id"`
	Category   decision.PerformanceCategory `json:"category"`
	Difficulty *effects.Difficulty          `json:"difficulty,omitempty"`
	Assistance *effects.AssistanceLevel     `json:"assistance,omitempty"`
}

// Fixture is the top-level JSON structure for a recorded session.
type Fixture struct {
	Description  string          `json:"description"`
	Profile      profile.Profile `json:"profile"`
	Interactions []Interaction   `json:"interactions"`
	Expected     []Expectation   `json:"expected_results,omitempty"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Interactions) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s has no interactions", path)
	}
	return f, nil
}

// #endregion load

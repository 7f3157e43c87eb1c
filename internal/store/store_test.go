package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/profile"
	"github.com/ableworks/adaptive-trainer/internal/rules"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRoundTrip(t *testing.T) {
	s := tempStore(t)

	p := profile.Default("u1")
	p.FineMotor = 3
	p.Learning.Style = profile.StyleVisual

	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.LoadProfile("u1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileUpsert(t *testing.T) {
	s := tempStore(t)

	p := profile.Default("u1")
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	p.Attention = 2
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile (update): %v", err)
	}

	got, err := s.LoadProfile("u1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if got.Attention != 2 {
		t.Errorf("attention: got %d, want 2", got.Attention)
	}
}

func TestLoadProfileMissingUserDefaults(t *testing.T) {
	s := tempStore(t)

	got, err := s.LoadProfile("never-seen")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if got.UserID != "never-seen" {
		t.Errorf("user id: got %q, want never-seen", got.UserID)
	}
	if got.Cognitive != 5 {
		t.Errorf("expected mid-scale default profile, got cognitive=%d", got.Cognitive)
	}
}

func TestDecisionRoundTrip(t *testing.T) {
	s := tempStore(t)

	rating := 5
	d := decision.Decision{
		ID: "dec-1",
		Signals: decision.SourceSignals{
			Rules: []rules.Triggered{{
				Name:     "attention-support",
				Priority: rules.PriorityHigh,
				Effects: effects.EffectSet{
					Environment: effects.EnvironmentEffects{FrequentBreaks: effects.Bool(true)},
				},
			}},
			Performance: decision.CategoryReduce,
			Feedback: &feedback.Directive{
				Scope:            feedback.ScopeTask,
				DifficultyRating: &rating,
				Timestamp:        time.Now().UTC().Truncate(time.Millisecond),
			},
		},
		Effects: effects.EffectSet{
			Tasks:      effects.TaskEffects{Difficulty: effects.DifficultyOf(effects.DifficultyEasy)},
			Assistance: effects.AssistanceEffects{Level: effects.AssistanceOf(effects.AssistanceExtensive)},
		},
		SuccessRate: 0.2,
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.SaveDecision("u1", d); err != nil {
		t.Fatalf("SaveDecision: %v", err)
	}

	got, err := s.GetDecision("dec-1")
	if err != nil {
		t.Fatalf("GetDecision: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("decision mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkOutcome(t *testing.T) {
	s := tempStore(t)

	d := decision.Decision{
		ID:        "dec-1",
		Signals:   decision.SourceSignals{Performance: decision.CategoryNone},
		Timestamp: time.Now().UTC(),
	}
	if err := s.SaveDecision("u1", d); err != nil {
		t.Fatalf("SaveDecision: %v", err)
	}
	if err := s.MarkOutcome("dec-1", true); err != nil {
		t.Fatalf("MarkOutcome: %v", err)
	}

	got, err := s.GetDecision("dec-1")
	if err != nil {
		t.Fatalf("GetDecision: %v", err)
	}
	if !got.OutcomeKnown || !got.OutcomeSuccess {
		t.Errorf("outcome: got known=%v success=%v, want true/true", got.OutcomeKnown, got.OutcomeSuccess)
	}
}

func TestListDecisionsNewestFirst(t *testing.T) {
	s := tempStore(t)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		d := decision.Decision{
			ID:        []string{"a", "b", "c", "d", "e"}[i],
			Signals:   decision.SourceSignals{Performance: decision.CategoryNone},
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := s.SaveDecision("u1", d); err != nil {
			t.Fatalf("SaveDecision %d: %v", i, err)
		}
	}

	got, err := s.ListDecisions("u1", 3)
	if err != nil {
		t.Fatalf("ListDecisions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len: got %d, want 3", len(got))
	}
	want := []string{"e", "d", "c"}
	for i, d := range got {
		if d.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, d.ID, want[i])
		}
	}
}

func TestListDecisionsScopedByUser(t *testing.T) {
	s := tempStore(t)

	now := time.Now().UTC()
	s.SaveDecision("u1", decision.Decision{ID: "mine", Signals: decision.SourceSignals{Performance: decision.CategoryNone}, Timestamp: now})
	s.SaveDecision("u2", decision.Decision{ID: "theirs", Signals: decision.SourceSignals{Performance: decision.CategoryNone}, Timestamp: now})

	got, err := s.ListDecisions("u1", 10)
	if err != nil {
		t.Fatalf("ListDecisions: %v", err)
	}
	if len(got) != 1 || got[0].ID != "mine" {
		t.Errorf("got %v, want only u1's decision", got)
	}
}

func TestSaveFeedback(t *testing.T) {
	s := tempStore(t)

	frustration := 4
	err := s.SaveFeedback("u1", feedback.Directive{
		Scope:       feedback.ScopePeriodic,
		Frustration: &frustration,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("SaveFeedback: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM feedback_log WHERE user_id = 'u1'`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("feedback rows: got %d, want 1", count)
	}
}

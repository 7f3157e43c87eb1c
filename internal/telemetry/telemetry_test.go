package telemetry

import (
	"testing"
	"time"

	"github.com/ableworks/adaptive-trainer/internal/effects"
)

func TestSummarizeRates(t *testing.T) {
	tests := []struct {
		name           string
		counters       RawTaskCounters
		wantSuccess    float64
		wantError      float64
		wantEfficiency float64
	}{
		{
			"normal",
			RawTaskCounters{Attempts: 10, Successes: 8, Errors: 3, Interactions: 30, StepsCompleted: 5, TotalSteps: 6},
			0.8, 0.1, 5.0 / 6.0,
		},
		{
			"all-zero-counters",
			RawTaskCounters{},
			0, 0, 0,
		},
		{
			"zero-interactions-with-errors",
			RawTaskCounters{Errors: 2},
			0, 1, 0, // errors/max(interactions,1) = 2/1, clamped to 1
		},
		{
			"overachieving-clamps",
			RawTaskCounters{Attempts: 2, Successes: 5, Interactions: 1, Errors: 0, StepsCompleted: 9, TotalSteps: 3},
			1, 0, 1,
		},
		{
			"negative-counters-degrade",
			RawTaskCounters{Attempts: -5, Successes: -1, Errors: -2, Interactions: -4},
			0, 0, 0,
		},
	}

	agg := NewAggregator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := agg.Summarize(tt.counters)
			if s.SuccessRate != tt.wantSuccess {
				t.Errorf("SuccessRate: got %v, want %v", s.SuccessRate, tt.wantSuccess)
			}
			if s.ErrorRate != tt.wantError {
				t.Errorf("ErrorRate: got %v, want %v", s.ErrorRate, tt.wantError)
			}
			if s.Efficiency != tt.wantEfficiency {
				t.Errorf("Efficiency: got %v, want %v", s.Efficiency, tt.wantEfficiency)
			}
			// Never NaN regardless of input.
			if s.ErrorRate != s.ErrorRate || s.SuccessRate != s.SuccessRate {
				t.Error("rate is NaN")
			}
		})
	}
}

func TestSummarizeDefaults(t *testing.T) {
	agg := NewAggregator(nil)
	s := agg.Summarize(RawTaskCounters{Duration: -time.Second})

	if s.Difficulty != effects.DifficultyMedium {
		t.Errorf("Difficulty: got %q, want medium", s.Difficulty)
	}
	if s.Assistance != effects.AssistanceModerate {
		t.Errorf("Assistance: got %q, want moderate", s.Assistance)
	}
	if s.CompletionTime != 0 {
		t.Errorf("CompletionTime: got %v, want 0", s.CompletionTime)
	}
	if s.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestNeutralSample(t *testing.T) {
	now := time.Now()
	s := Neutral(now)
	if s.SuccessRate != 0.5 {
		t.Errorf("SuccessRate: got %v, want 0.5", s.SuccessRate)
	}
	if s.Difficulty != effects.DifficultyMedium {
		t.Errorf("Difficulty: got %q, want medium", s.Difficulty)
	}
	if !s.Timestamp.Equal(now) {
		t.Errorf("Timestamp: got %v, want %v", s.Timestamp, now)
	}
}

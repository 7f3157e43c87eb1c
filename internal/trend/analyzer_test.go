package trend

import (
	"testing"
	"time"

	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/history"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		window []float64
		want   Trend
	}{
		{"empty", nil, TrendStable},
		{"single-sample", []float64{100}, TrendStable},
		{"flat", []float64{100, 100}, TrendStable},
		{"eleven-percent-up", []float64{100, 111}, TrendImproving},
		{"nine-percent-up", []float64{100, 109}, TrendStable},
		{"exactly-ten-percent", []float64{100, 110}, TrendStable},
		{"eleven-percent-down", []float64{100, 89}, TrendDeclining},
		{"nine-percent-down", []float64{100, 91}, TrendStable},
		{"uses-endpoints-not-middle", []float64{100, 500, 105}, TrendStable},
		{"from-zero-up", []float64{0, 0.2}, TrendImproving},
		{"from-zero-down", []float64{0, -0.2}, TrendDeclining},
		{"zero-flat", []float64{0, 0}, TrendStable},
		{"negative-first-improving", []float64{-100, -80}, TrendImproving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer()
			for _, v := range tt.window {
				a.Push("m", v)
			}
			if got := a.Classify("m"); got != tt.want {
				t.Errorf("Classify: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindowBounding(t *testing.T) {
	a := NewAnalyzer()
	for i := 0; i < 50; i++ {
		a.Push("m", float64(i))
	}

	w := a.Window("m")
	if len(w) != DefaultWindowSize {
		t.Fatalf("window length: got %d, want %d", len(w), DefaultWindowSize)
	}
	// Oldest dropped: window should be [30..49].
	if w[0] != 30 {
		t.Errorf("first element: got %v, want 30", w[0])
	}
	if w[len(w)-1] != 49 {
		t.Errorf("last element: got %v, want 49", w[len(w)-1])
	}
}

func TestWindowsAreIndependent(t *testing.T) {
	a := NewAnalyzer()
	a.Push("up", 100)
	a.Push("up", 150)
	a.Push("down", 100)
	a.Push("down", 50)

	if got := a.Classify("up"); got != TrendImproving {
		t.Errorf("up: got %q, want improving", got)
	}
	if got := a.Classify("down"); got != TrendDeclining {
		t.Errorf("down: got %q, want declining", got)
	}
}

func TestEffectiveness(t *testing.T) {
	mk := func(known, success bool) decision.Decision {
		return decision.Decision{
			Timestamp:      time.Now(),
			OutcomeKnown:   known,
			OutcomeSuccess: success,
		}
	}

	tests := []struct {
		name      string
		decisions []decision.Decision
		want      float64
	}{
		{"nil-ledger-contents", nil, 0},
		{"no-known-outcomes", []decision.Decision{mk(false, false), mk(false, false)}, 0},
		{"all-effective", []decision.Decision{mk(true, true), mk(true, true)}, 1},
		{"half-effective", []decision.Decision{mk(true, true), mk(true, false)}, 0.5},
		{"unknown-excluded-from-denominator", []decision.Decision{mk(true, true), mk(false, false), mk(false, false)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := history.NewLedger()
			for _, d := range tt.decisions {
				l.Append(d)
			}
			if got := Effectiveness(l); got != tt.want {
				t.Errorf("Effectiveness: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectivenessTrailingWindow(t *testing.T) {
	l := history.NewLedger()
	// 30 old failures followed by 20 recent successes: only the trailing 20
	// decisions count.
	for i := 0; i < 30; i++ {
		l.Append(decision.Decision{OutcomeKnown: true, OutcomeSuccess: false})
	}
	for i := 0; i < 20; i++ {
		l.Append(decision.Decision{OutcomeKnown: true, OutcomeSuccess: true})
	}
	if got := Effectiveness(l); got != 1 {
		t.Errorf("Effectiveness: got %v, want 1", got)
	}
}

func TestEffectivenessNilLedger(t *testing.T) {
	if got := Effectiveness(nil); got != 0 {
		t.Errorf("Effectiveness(nil): got %v, want 0", got)
	}
}

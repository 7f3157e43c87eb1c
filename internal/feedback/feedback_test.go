package feedback

import (
	"testing"
	"time"
)

func TestInterpret(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		raw            RawSubmission
		wantDifficulty *int
		wantFrustation *int
	}{
		{"all-unanswered", RawSubmission{}, nil, nil},
		{"answered", RawSubmission{DifficultyRating: 5, Frustration: 2}, intp(5), intp(2)},
		{"malformed-high-normalizes-mid", RawSubmission{DifficultyRating: 9}, intp(3), nil},
		{"malformed-negative-normalizes-mid", RawSubmission{Frustration: -1}, nil, intp(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Interpret(tt.raw, now)
			if !eq(d.DifficultyRating, tt.wantDifficulty) {
				t.Errorf("difficulty: got %v, want %v", deref(d.DifficultyRating), deref(tt.wantDifficulty))
			}
			if !eq(d.Frustration, tt.wantFrustation) {
				t.Errorf("frustration: got %v, want %v", deref(d.Frustration), deref(tt.wantFrustation))
			}
			if !d.Timestamp.Equal(now) {
				t.Errorf("timestamp: got %v, want %v", d.Timestamp, now)
			}
		})
	}
}

func TestInterpretScopeDefaultsToTask(t *testing.T) {
	d := Interpret(RawSubmission{}, time.Now())
	if d.Scope != ScopeTask {
		t.Errorf("scope: got %q, want task", d.Scope)
	}
	d = Interpret(RawSubmission{Scope: ScopeSession}, time.Now())
	if d.Scope != ScopeSession {
		t.Errorf("scope: got %q, want session", d.Scope)
	}
}

func TestCheckIn(t *testing.T) {
	d := CheckIn(4, time.Now())
	if d.Scope != ScopePeriodic {
		t.Errorf("scope: got %q, want periodic", d.Scope)
	}
	if !d.Frustrated() {
		t.Error("frustration 4 should report frustrated")
	}
	if d.DifficultyRating != nil {
		t.Error("check-in should not carry a difficulty rating")
	}
}

func TestDirectivePredicates(t *testing.T) {
	tests := []struct {
		name       string
		d          Directive
		tooHard    bool
		tooEasy    bool
		frustrated bool
	}{
		{"empty", Directive{}, false, false, false},
		{"too-hard", Directive{DifficultyRating: intp(4)}, true, false, false},
		{"too-easy", Directive{DifficultyRating: intp(2)}, false, true, false},
		{"middle-rating", Directive{DifficultyRating: intp(3)}, false, false, false},
		{"frustrated", Directive{Frustration: intp(5)}, false, false, true},
		{"calm", Directive{Frustration: intp(3)}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.TooHard(); got != tt.tooHard {
				t.Errorf("TooHard: got %v, want %v", got, tt.tooHard)
			}
			if got := tt.d.TooEasy(); got != tt.tooEasy {
				t.Errorf("TooEasy: got %v, want %v", got, tt.tooEasy)
			}
			if got := tt.d.Frustrated(); got != tt.frustrated {
				t.Errorf("Frustrated: got %v, want %v", got, tt.frustrated)
			}
		})
	}
}

func intp(v int) *int { return &v }

func eq(a, b *int) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func deref(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

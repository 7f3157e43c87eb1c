package feedback

import "time"

// #region scope

// Scope identifies what a feedback submission is about.
type Scope string

const (
	ScopeTask     Scope = "task"
	ScopeSession  Scope = "session"
	ScopePeriodic Scope = "periodic"
)

// #endregion scope

// #region raw-submission

// RawSubmission is the feedback-collection UI's answer payload. Ratings are
// 1-5; zero means the question was not answered. Values outside 1-5 are
// malformed and normalize to mid-scale.
type RawSubmission struct {
	Scope            Scope `json:"scope"`
	DifficultyRating int   `json:"difficulty_rating"`
	Frustration      int   `json:"frustration"`
	AssistanceRating int   `json:"assistance_rating"`
}

// #endregion raw-submission

// #region directive

// Directive is an interpreted, trusted feedback signal. Nil rating fields
// were not answered and force nothing during the merge. Directives are
// transient: consumed by one decision, then only kept in its provenance.
type Directive struct {
	Scope            Scope     `json:"scope"`
	DifficultyRating *int      `json:"difficulty_rating,omitempty"`
	Frustration      *int      `json:"frustration,omitempty"`
	AssistanceRating *int      `json:"assistance_rating,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// TooHard reports whether the user rated the task too hard (>= 4).
func (d Directive) TooHard() bool {
	return d.DifficultyRating != nil && *d.DifficultyRating >= 4
}

// TooEasy reports whether the user rated the task too easy (<= 2).
func (d Directive) TooEasy() bool {
	return d.DifficultyRating != nil && *d.DifficultyRating <= 2
}

// Frustrated reports whether the user reported high frustration (>= 4).
func (d Directive) Frustrated() bool {
	return d.Frustration != nil && *d.Frustration >= 4
}

// #endregion directive

// #region interpret

const midScale = 3

// Interpret converts a raw submission into a Directive. Unanswered ratings
// (zero) stay nil; answered-but-malformed ratings normalize to mid-scale
// so a partial submission still yields a usable signal.
func Interpret(raw RawSubmission, now time.Time) Directive {
	d := Directive{
		Scope:     raw.Scope,
		Timestamp: now,
	}
	if d.Scope == "" {
		d.Scope = ScopeTask
	}
	d.DifficultyRating = normalizeRating(raw.DifficultyRating)
	d.Frustration = normalizeRating(raw.Frustration)
	d.AssistanceRating = normalizeRating(raw.AssistanceRating)
	return d
}

// CheckIn builds the periodic check-in directive from a single frustration
// answer, the only question the periodic prompt asks.
func CheckIn(frustration int, now time.Time) Directive {
	return Directive{
		Scope:       ScopePeriodic,
		Frustration: normalizeRating(frustration),
		Timestamp:   now,
	}
}

// normalizeRating maps 0 to nil (unanswered) and out-of-range answers to
// mid-scale.
func normalizeRating(v int) *int {
	if v == 0 {
		return nil
	}
	if v < 1 || v > 5 {
		v = midScale
	}
	return &v
}

// #endregion interpret

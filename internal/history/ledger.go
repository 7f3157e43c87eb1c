package history

// #region imports
import (
	"github.com/ableworks/adaptive-trainer/internal/decision"
)

// #endregion

// #region ledger

// DefaultCapacity bounds the in-memory decision ledger.
const DefaultCapacity = 100

// Ledger is the bounded, append-only record of past decisions. Eviction is
// FIFO. A decision's outcome fields are the only mutation allowed, and only
// once. Not safe for concurrent use; the controller serializes access.
type Ledger struct {
	capacity  int
	decisions []decision.Decision
}

// NewLedger creates a ledger with the default capacity.
func NewLedger() *Ledger {
	return NewLedgerWithCapacity(DefaultCapacity)
}

// NewLedgerWithCapacity creates a ledger bounded at n decisions.
func NewLedgerWithCapacity(n int) *Ledger {
	if n < 1 {
		n = 1
	}
	return &Ledger{capacity: n}
}

// #endregion ledger

// #region append

// Append records a decision, evicting the oldest beyond capacity.
func (l *Ledger) Append(d decision.Decision) {
	l.decisions = append(l.decisions, d)
	if len(l.decisions) > l.capacity {
		over := len(l.decisions) - l.capacity
		l.decisions = append(l.decisions[:0:0], l.decisions[over:]...)
	}
}

// #endregion append

// #region queries

// Len returns the number of retained decisions.
func (l *Ledger) Len() int {
	return len(l.decisions)
}

// Recent returns the last n decisions in chronological order.
func (l *Ledger) Recent(n int) []decision.Decision {
	if n > len(l.decisions) {
		n = len(l.decisions)
	}
	if n <= 0 {
		return nil
	}
	out := make([]decision.Decision, n)
	copy(out, l.decisions[len(l.decisions)-n:])
	return out
}

// All returns every retained decision in chronological order.
func (l *Ledger) All() []decision.Decision {
	return l.Recent(len(l.decisions))
}

// #endregion queries

// #region label-latest

// LabelLatest marks the most recent unlabeled decision's outcome against
// the new sample's success rate: success means no regression. Already
// labeled decisions are never relabeled. Returns the labeled decision and
// true, or false when every decision already has a known outcome.
func (l *Ledger) LabelLatest(newSuccessRate float64) (decision.Decision, bool) {
	for i := len(l.decisions) - 1; i >= 0; i-- {
		if l.decisions[i].OutcomeKnown {
			continue
		}
		l.decisions[i].OutcomeKnown = true
		l.decisions[i].OutcomeSuccess = newSuccessRate >= l.decisions[i].SuccessRate
		return l.decisions[i], true
	}
	return decision.Decision{}, false
}

// #endregion label-latest

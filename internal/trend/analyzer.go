package trend

// #region imports
import (
	"math"

	"github.com/ableworks/adaptive-trainer/internal/history"
)

// #endregion

// #region trend

// Trend classifies a tracked metric's direction over its window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// #endregion trend

// #region metric-names

// Metric names tracked by the controller.
const (
	MetricSuccessRate    = "success_rate"
	MetricErrorRate      = "error_rate"
	MetricEfficiency     = "efficiency"
	MetricCompletionTime = "completion_time"
)

// #endregion metric-names

// #region analyzer

// DefaultWindowSize bounds each per-metric sample window.
const DefaultWindowSize = 20

// relativeChangeThreshold separates stable from improving/declining.
const relativeChangeThreshold = 0.10

// Analyzer keeps a bounded sliding window per metric and classifies each
// window's direction. Not safe for concurrent use; the controller
// serializes access.
type Analyzer struct {
	size    int
	windows map[string][]float64
}

// NewAnalyzer creates an Analyzer with the default window size.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithSize(DefaultWindowSize)
}

// NewAnalyzerWithSize creates an Analyzer with windows bounded at n.
func NewAnalyzerWithSize(n int) *Analyzer {
	if n < 2 {
		n = 2
	}
	return &Analyzer{size: n, windows: make(map[string][]float64)}
}

// #endregion analyzer

// #region push

// Push appends a value to the metric's window, dropping the oldest value
// beyond the window bound.
func (a *Analyzer) Push(metric string, value float64) {
	w := append(a.windows[metric], value)
	if len(w) > a.size {
		w = append(w[:0:0], w[len(w)-a.size:]...)
	}
	a.windows[metric] = w
}

// Window returns a copy of the metric's current window, oldest first.
func (a *Analyzer) Window(metric string) []float64 {
	w := a.windows[metric]
	out := make([]float64, len(w))
	copy(out, w)
	return out
}

// #endregion push

// #region classify

// Classify labels the metric by the relative change between the first and
// last value of its window. Changes within 10% are stable; windows with
// fewer than two samples are stable by definition.
func (a *Analyzer) Classify(metric string) Trend {
	w := a.windows[metric]
	if len(w) < 2 {
		return TrendStable
	}
	first, last := w[0], w[len(w)-1]
	delta := last - first

	if first == 0 {
		// Any movement off zero is an unbounded relative change.
		switch {
		case delta > 0:
			return TrendImproving
		case delta < 0:
			return TrendDeclining
		default:
			return TrendStable
		}
	}

	rel := delta / math.Abs(first)
	switch {
	case rel > relativeChangeThreshold:
		return TrendImproving
	case rel < -relativeChangeThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// #endregion classify

// #region effectiveness

// effectivenessWindow is the most-recent subset of decisions scored.
const effectivenessWindow = 20

// Effectiveness is the rolling ratio of labeled decisions whose next sample
// showed no regression, over the trailing window. Returns 0 when no
// decision has a known outcome yet: untested adaptations are not presumed
// effective.
func Effectiveness(ledger *history.Ledger) float64 {
	if ledger == nil {
		return 0
	}
	var known, succeeded int
	for _, d := range ledger.Recent(effectivenessWindow) {
		if !d.OutcomeKnown {
			continue
		}
		known++
		if d.OutcomeSuccess {
			succeeded++
		}
	}
	if known == 0 {
		return 0
	}
	return float64(succeeded) / float64(known)
}

// #endregion effectiveness

package controller

// #region imports
import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/history"
	"github.com/ableworks/adaptive-trainer/internal/profile"
	"github.com/ableworks/adaptive-trainer/internal/rules"
	"github.com/ableworks/adaptive-trainer/internal/store"
	"github.com/ableworks/adaptive-trainer/internal/telemetry"
	"github.com/ableworks/adaptive-trainer/internal/trend"
)

// #endregion

// #region profile-source

// ProfileSource is the pull-based read of the user's ability profile.
// The assessment collaborator owns the profile; the controller only
// snapshots it at decision time.
type ProfileSource interface {
	Snapshot() profile.Profile
}

// StaticProfile is a ProfileSource returning a fixed snapshot.
type StaticProfile struct {
	Profile profile.Profile
}

// Snapshot returns the fixed profile.
func (s StaticProfile) Snapshot() profile.Profile {
	return s.Profile
}

// #endregion profile-source

// #region options

// Options configures a Controller. Zero-value fields get working defaults.
type Options struct {
	Profiles ProfileSource  // required
	Registry *effects.Registry
	Store    *store.Store // optional durable log
	Rules    []rules.Rule // optional custom rule table
	Logger   *zap.Logger
}

// #endregion options

// #region controller

// Controller owns one user session's adaptation loop. Each trigger runs
// the full decide pipeline to completion under one mutex, preserving the
// single-writer ordering over the ledger and trend windows. The pipeline
// stays side-effect-free until its final persist+dispatch step.
type Controller struct {
	mu sync.Mutex

	userID     string
	profiles   ProfileSource
	aggregator *telemetry.Aggregator
	analyzer   *trend.Analyzer
	merger     *decision.Merger
	ledger     *history.Ledger
	registry   *effects.Registry
	store      *store.Store
	logger     *zap.Logger

	pending    *feedback.Directive
	lastSample *telemetry.Sample
}

// New creates a fully wired controller for one user session.
func New(userID string, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Profiles == nil {
		opts.Profiles = StaticProfile{Profile: profile.Default(userID)}
	}
	registry := opts.Registry
	if registry == nil {
		registry = effects.NewRegistry(logger)
	}

	var engine *rules.Engine
	if opts.Rules != nil {
		engine = rules.NewEngineWithRules(opts.Rules, logger)
	} else {
		engine = rules.NewEngine(logger)
	}

	return &Controller{
		userID:     userID,
		profiles:   opts.Profiles,
		aggregator: telemetry.NewAggregator(logger),
		analyzer:   trend.NewAnalyzer(),
		merger:     decision.NewMerger(engine, logger),
		ledger:     history.NewLedger(),
		registry:   registry,
		store:      opts.Store,
		logger:     logger,
	}
}

// #endregion controller

// #region task-trigger

// OnTaskCompleted ingests raw task counters, labels the previous decision's
// outcome against the new sample, updates trend windows, and runs a
// decision.
func (c *Controller) OnTaskCompleted(counters telemetry.RawTaskCounters) decision.Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	sample := c.aggregator.Summarize(counters)

	// Retroactive outcome labeling happens only when a genuinely new
	// sample arrives; periodic triggers reuse the last sample and must not
	// relabel against it.
	var labeled *decision.Decision
	if d, ok := c.ledger.LabelLatest(sample.SuccessRate); ok {
		labeled = &d
	}

	c.analyzer.Push(trend.MetricSuccessRate, sample.SuccessRate)
	c.analyzer.Push(trend.MetricErrorRate, sample.ErrorRate)
	c.analyzer.Push(trend.MetricEfficiency, sample.Efficiency)
	c.analyzer.Push(trend.MetricCompletionTime, sample.CompletionTime.Seconds())

	c.lastSample = &sample
	return c.runDecision(sample, labeled)
}

// #endregion task-trigger

// #region feedback-trigger

// OnFeedback interprets a submission, stores it as the pending directive,
// and immediately runs a decision that consumes it.
func (c *Controller) OnFeedback(raw feedback.RawSubmission) decision.Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := feedback.Interpret(raw, time.Now().UTC())
	c.pending = &d
	return c.runDecision(c.currentSample(), nil)
}

// OnCheckIn records the periodic check-in's single frustration answer and
// immediately runs a decision that consumes it.
func (c *Controller) OnCheckIn(frustration int) decision.Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := feedback.CheckIn(frustration, time.Now().UTC())
	c.pending = &d
	return c.runDecision(c.currentSample(), nil)
}

// #endregion feedback-trigger

// #region tick-trigger

// OnTick runs the periodic behavioral-sampling decision against the most
// recent sample (or a neutral one before any task has completed).
func (c *Controller) OnTick() decision.Decision {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runDecision(c.currentSample(), nil)
}

// Run fires OnTick at the given interval until ctx is canceled.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.OnTick()
		}
	}
}

// #endregion tick-trigger

// #region decide

// runDecision executes the full pipeline for one trigger. Caller holds the
// mutex. Persistence and dispatch run last, after the merge is complete.
func (c *Controller) runDecision(sample telemetry.Sample, labeled *decision.Decision) decision.Decision {
	snapshot := c.profiles.Snapshot().Clamp()

	consumed := c.pending
	d := c.merger.Decide(snapshot, sample, consumed)
	c.pending = nil

	c.ledger.Append(d)

	c.logger.Info("decision recorded",
		zap.String("decision", d.ID),
		zap.String("category", string(d.Signals.Performance)),
		zap.Float64("effectiveness", trend.Effectiveness(c.ledger)),
		zap.String("success_trend", string(c.analyzer.Classify(trend.MetricSuccessRate))))

	// Final step: durable writes then collaborator dispatch. Failures
	// degrade to logs; a decision never aborts here.
	if c.store != nil {
		if labeled != nil {
			if err := c.store.MarkOutcome(labeled.ID, labeled.OutcomeSuccess); err != nil {
				c.logger.Warn("mark outcome failed", zap.Error(err))
			}
		}
		if err := c.store.SaveDecision(c.userID, d); err != nil {
			c.logger.Warn("save decision failed", zap.Error(err))
		}
		if consumed != nil {
			if err := c.store.SaveFeedback(c.userID, *consumed); err != nil {
				c.logger.Warn("save feedback failed", zap.Error(err))
			}
		}
	}
	c.registry.Dispatch(d.Effects)

	return d
}

// currentSample returns the latest sample, or a neutral mid-scale sample
// when no task has completed yet.
func (c *Controller) currentSample() telemetry.Sample {
	if c.lastSample != nil {
		return *c.lastSample
	}
	return telemetry.Neutral(time.Now().UTC())
}

// #endregion decide

// #region read-only

// History returns a chronological copy of the retained decision ledger for
// analytics collaborators.
func (c *Controller) History() []decision.Decision {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.All()
}

// Effectiveness returns the rolling effectiveness ratio.
func (c *Controller) Effectiveness() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return trend.Effectiveness(c.ledger)
}

// Trend returns the current classification for a tracked metric.
func (c *Controller) Trend(metric string) trend.Trend {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analyzer.Classify(metric)
}

// #endregion read-only

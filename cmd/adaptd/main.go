package main

// #region imports
import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ableworks/adaptive-trainer/internal/controller"
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/store"
	"github.com/ableworks/adaptive-trainer/internal/telemetry"
	"github.com/ableworks/adaptive-trainer/internal/trend"
)

// #endregion

// #region main
func main() {
	cfg, err := controller.ParseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logCfg := zap.NewProductionConfig()
	if cfg.Debug {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer st.Close()

	prof, err := st.LoadProfile(cfg.UserID)
	if err != nil {
		logger.Fatal("load profile", zap.Error(err))
	}

	registry := effects.NewRegistry(logger)
	console := &consoleCollaborator{}
	registry.RegisterEnvironment(console)
	registry.RegisterObjects(console)
	registry.RegisterTasks(console)
	registry.RegisterInterface(console)
	registry.RegisterAssistance(console)

	ctrl := controller.New(cfg.UserID, controller.Options{
		Profiles: controller.StaticProfile{Profile: prof},
		Registry: registry,
		Store:    st,
		Logger:   logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx, cfg.TickInterval)

	fmt.Println("Adaptive Trainer Controller ready.")
	fmt.Printf("  user: %s | db: %s | tick: %s\n", cfg.UserID, cfg.DBPath, cfg.TickInterval)
	fmt.Println("Commands: task S/A [err=N] [inter=N] [steps=D/T] [dur=30s] | feedback [d=N] [f=N] [a=N] | checkin N | tick | profile | history [n] | eff | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "task":
			runTask(ctrl, fields[1:])
		case "feedback":
			runFeedback(ctrl, fields[1:])
		case "checkin":
			runCheckIn(ctrl, fields[1:])
		case "tick":
			d := ctrl.OnTick()
			fmt.Printf("decision %s category=%s\n", d.ID, d.Signals.Performance)
		case "profile":
			blob, _ := json.MarshalIndent(prof, "", "  ")
			fmt.Println(string(blob))
		case "history":
			showHistory(ctrl, fields[1:])
		case "eff":
			fmt.Printf("effectiveness=%.2f success_trend=%s\n",
				ctrl.Effectiveness(), ctrl.Trend(trend.MetricSuccessRate))
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

// #endregion main

// #region commands

// runTask parses "task S/A [err=N] [inter=N] [steps=D/T] [dur=30s]".
func runTask(ctrl *controller.Controller, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: task successes/attempts [err=N] [inter=N] [steps=done/total] [dur=30s]")
		return
	}
	var counters telemetry.RawTaskCounters
	succ, att, ok := parsePair(args[0])
	if !ok {
		fmt.Printf("bad ratio %q, want successes/attempts\n", args[0])
		return
	}
	counters.Successes, counters.Attempts = succ, att

	for _, arg := range args[1:] {
		key, val, found := strings.Cut(arg, "=")
		if !found {
			fmt.Printf("bad argument %q\n", arg)
			return
		}
		switch key {
		case "err":
			counters.Errors, _ = strconv.Atoi(val)
		case "inter":
			counters.Interactions, _ = strconv.Atoi(val)
		case "steps":
			done, total, ok := parsePair(val)
			if !ok {
				fmt.Printf("bad steps %q, want done/total\n", val)
				return
			}
			counters.StepsCompleted, counters.TotalSteps = done, total
		case "dur":
			d, err := time.ParseDuration(val)
			if err != nil {
				fmt.Printf("bad duration %q\n", val)
				return
			}
			counters.Duration = d
		default:
			fmt.Printf("unknown argument %q\n", key)
			return
		}
	}

	d := ctrl.OnTaskCompleted(counters)
	fmt.Printf("decision %s category=%s rules=%d\n",
		d.ID, d.Signals.Performance, len(d.Signals.Rules))
}

// runFeedback parses "feedback [d=N] [f=N] [a=N]".
func runFeedback(ctrl *controller.Controller, args []string) {
	raw := feedback.RawSubmission{Scope: feedback.ScopeTask}
	for _, arg := range args {
		key, val, found := strings.Cut(arg, "=")
		if !found {
			fmt.Printf("bad argument %q\n", arg)
			return
		}
		n, _ := strconv.Atoi(val)
		switch key {
		case "d":
			raw.DifficultyRating = n
		case "f":
			raw.Frustration = n
		case "a":
			raw.AssistanceRating = n
		default:
			fmt.Printf("unknown rating %q\n", key)
			return
		}
	}
	d := ctrl.OnFeedback(raw)
	fmt.Printf("decision %s category=%s\n", d.ID, d.Signals.Performance)
}

// runCheckIn parses "checkin N", the periodic one-question frustration prompt.
func runCheckIn(ctrl *controller.Controller, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: checkin frustration(1-5)")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("bad rating %q\n", args[0])
		return
	}
	d := ctrl.OnCheckIn(n)
	fmt.Printf("decision %s category=%s\n", d.ID, d.Signals.Performance)
}

func showHistory(ctrl *controller.Controller, args []string) {
	n := 10
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			n = v
		}
	}
	all := ctrl.History()
	if len(all) > n {
		all = all[len(all)-n:]
	}
	for _, d := range all {
		outcome := "pending"
		if d.OutcomeKnown {
			outcome = "regressed"
			if d.OutcomeSuccess {
				outcome = "effective"
			}
		}
		fmt.Printf("%s  %s  category=%-8s  success=%.2f  outcome=%s\n",
			d.Timestamp.Format(time.TimeOnly), d.ID[:8], d.Signals.Performance,
			d.SuccessRate, outcome)
	}
}

func parsePair(s string) (int, int, bool) {
	a, b, found := strings.Cut(s, "/")
	if !found {
		return 0, 0, false
	}
	x, err1 := strconv.Atoi(a)
	y, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return x, y, true
}

// #endregion commands

// #region console-collaborator

// consoleCollaborator stands in for the rendering/navigation/task-runner
// collaborators during interactive sessions, printing each namespace it
// receives.
type consoleCollaborator struct{}

func (c *consoleCollaborator) ApplyEnvironment(e effects.EnvironmentEffects) {
	printNamespace("environment", e)
}

func (c *consoleCollaborator) ApplyObjects(e effects.ObjectEffects) {
	printNamespace("objects", e)
}

func (c *consoleCollaborator) ApplyTasks(e effects.TaskEffects) {
	printNamespace("tasks", e)
}

func (c *consoleCollaborator) ApplyInterface(e effects.InterfaceEffects) {
	printNamespace("interface", e)
}

func (c *consoleCollaborator) ApplyAssistance(e effects.AssistanceEffects) {
	printNamespace("assistance", e)
}

func printNamespace(name string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Printf("  apply %s: %s\n", name, blob)
}

// #endregion console-collaborator

package main

// #region imports
import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ableworks/adaptive-trainer/internal/replay"
)

// #endregion

// #region main
func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print per-interaction effect sets")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/session.json [-v]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}

	fmt.Printf("replaying: %s (%d interactions)\n", fixture.Description, len(fixture.Interactions))

	results, summary := replay.Run(fixture, logger)
	for _, r := range results {
		fmt.Printf("  %-12s category=%-8s rules=%v\n", r.ID, r.Category, r.Rules)
		if *verbose {
			printEffects(r)
		}
	}

	fmt.Printf("summary: %d interactions | reduce=%d increase=%d none=%d | effectiveness=%.2f\n",
		summary.Interactions, summary.Reduce, summary.Increase, summary.None, summary.Effectiveness)

	if len(fixture.Expected) > 0 {
		mismatches := replay.Verify(results, fixture.Expected)
		if len(mismatches) == 0 {
			fmt.Printf("verified: all %d expectations hold\n", len(fixture.Expected))
			return
		}
		fmt.Printf("FAILED: %d mismatches\n", len(mismatches))
		for _, m := range mismatches {
			fmt.Printf("  %s\n", m)
		}
		os.Exit(1)
	}
}

// #endregion main

// #region output

func printEffects(r replay.Result) {
	if r.Effects.Tasks.Difficulty != nil {
		fmt.Printf("    tasks.difficulty=%s\n", *r.Effects.Tasks.Difficulty)
	}
	if r.Effects.Assistance.Level != nil {
		fmt.Printf("    assistance.level=%s\n", *r.Effects.Assistance.Level)
	}
	if r.Effects.Environment.FrequentBreaks != nil {
		fmt.Printf("    environment.frequent_breaks=%v\n", *r.Effects.Environment.FrequentBreaks)
	}
	if r.Effects.Interface.Contrast != nil {
		fmt.Printf("    interface.contrast=%s\n", *r.Effects.Interface.Contrast)
	}
	if r.Effects.Objects.Scale != nil {
		fmt.Printf("    objects.scale=%.2f\n", r.Effects.Objects.Scale.Clamped())
	}
}

// #endregion output

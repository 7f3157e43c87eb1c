package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/store"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to adaptive_trainer.db")
	user := flag.String("user", "local", "user id to inspect")
	last := flag.Int("last", 20, "show N most recent decisions")
	decisionID := flag.String("decision", "", "show single decision detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/adaptive_trainer.db [--user id] [--last N] [--decision id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *decisionID != "" {
		if err := runDetailMode(st, *decisionID, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runListMode(st, *user, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	DecisionID  string  `json:"decision_id"`
	Category    string  `json:"category"`
	Rules       int     `json:"rules"`
	Feedback    bool    `json:"feedback"`
	SuccessRate float64 `json:"success_rate"`
	Outcome     string  `json:"outcome"`
	CreatedAt   string  `json:"created_at"`
}

func runListMode(st *store.Store, userID string, last int, jsonOut bool) error {
	decisions, err := st.ListDecisions(userID, last)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, listRow{
			DecisionID:  d.ID,
			Category:    string(d.Signals.Performance),
			Rules:       len(d.Signals.Rules),
			Feedback:    d.Signals.Feedback != nil,
			SuccessRate: d.SuccessRate,
			Outcome:     outcomeLabel(d),
			CreatedAt:   d.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-36s  %-8s  %5s  %8s  %7s  %-9s  %s\n",
		"DECISION", "CATEGORY", "RULES", "FEEDBACK", "SUCCESS", "OUTCOME", "CREATED")
	for _, r := range rows {
		fb := ""
		if r.Feedback {
			fb = "yes"
		}
		fmt.Printf("%-36s  %-8s  %5d  %8s  %7.2f  %-9s  %s\n",
			r.DecisionID, r.Category, r.Rules, fb, r.SuccessRate, r.Outcome, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(st *store.Store, decisionID string, jsonOut bool) error {
	d, err := st.GetDecision(decisionID)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	fmt.Printf("decision:  %s\n", d.ID)
	fmt.Printf("created:   %s\n", d.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("category:  %s\n", d.Signals.Performance)
	fmt.Printf("success:   %.2f\n", d.SuccessRate)
	fmt.Printf("outcome:   %s\n", outcomeLabel(d))
	if d.Signals.Feedback != nil {
		blob, _ := json.Marshal(d.Signals.Feedback)
		fmt.Printf("feedback:  %s\n", blob)
	}
	fmt.Printf("rules (%d):\n", len(d.Signals.Rules))
	for _, tr := range d.Signals.Rules {
		fmt.Printf("  %-24s %s\n", tr.Name, tr.Priority)
	}
	blob, _ := json.MarshalIndent(d.Effects, "", "  ")
	fmt.Printf("effects:\n%s\n", blob)
	return nil
}

func outcomeLabel(d decision.Decision) string {
	if !d.OutcomeKnown {
		return "pending"
	}
	if d.OutcomeSuccess {
		return "effective"
	}
	return "regressed"
}

// #endregion detail-mode

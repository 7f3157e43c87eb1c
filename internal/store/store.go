package store

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ableworks/adaptive-trainer/internal/decision"
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/feedback"
	"github.com/ableworks/adaptive-trainer/internal/profile"
	"github.com/ableworks/adaptive-trainer/internal/rules"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS ability_profiles (
	user_id     TEXT PRIMARY KEY,
	profile     TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_log (
	decision_id     TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	category        TEXT NOT NULL,
	rules_json      TEXT,
	feedback_json   TEXT,
	effects_json    TEXT NOT NULL,
	success_rate    REAL NOT NULL,
	outcome_known   INTEGER NOT NULL DEFAULT 0,
	outcome_success INTEGER NOT NULL DEFAULT 0,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decision_log_user
ON decision_log(user_id, created_at);

CREATE TABLE IF NOT EXISTS feedback_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id     TEXT NOT NULL,
	directive   TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store persists profiles, decisions, and consumed feedback in SQLite,
// keyed by user id. The decision engine itself never blocks on it: the
// controller writes only after a decision is fully merged.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store-struct

// #region profiles

// SaveProfile upserts the user's ability profile snapshot.
func (s *Store) SaveProfile(p profile.Profile) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO ability_profiles (user_id, profile, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`,
		p.UserID, string(blob), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadProfile reads the user's stored profile. Missing users get the
// mid-scale default rather than an error: a decision is always possible.
func (s *Store) LoadProfile(userID string) (profile.Profile, error) {
	var blob string
	err := s.db.QueryRow(
		`SELECT profile FROM ability_profiles WHERE user_id = ?`, userID,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return profile.Default(userID), nil
	}
	if err != nil {
		return profile.Profile{}, fmt.Errorf("load profile %s: %w", userID, err)
	}
	var p profile.Profile
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal profile %s: %w", userID, err)
	}
	return p.Clamp(), nil
}

// #endregion profiles

// #region decisions

// SaveDecision appends a decision to the durable log.
func (s *Store) SaveDecision(userID string, d decision.Decision) error {
	rulesJSON, err := json.Marshal(d.Signals.Rules)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	effectsJSON, err := json.Marshal(d.Effects)
	if err != nil {
		return fmt.Errorf("marshal effects: %w", err)
	}
	var feedbackPtr interface{}
	if d.Signals.Feedback != nil {
		fb, err := json.Marshal(d.Signals.Feedback)
		if err != nil {
			return fmt.Errorf("marshal feedback: %w", err)
		}
		feedbackPtr = string(fb)
	}

	outcomeKnown, outcomeSuccess := 0, 0
	if d.OutcomeKnown {
		outcomeKnown = 1
	}
	if d.OutcomeSuccess {
		outcomeSuccess = 1
	}

	_, err = s.db.Exec(
		`INSERT INTO decision_log
		 (decision_id, user_id, category, rules_json, feedback_json, effects_json,
		  success_rate, outcome_known, outcome_success, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, userID, string(d.Signals.Performance), string(rulesJSON), feedbackPtr,
		string(effectsJSON), d.SuccessRate, outcomeKnown, outcomeSuccess,
		d.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save decision: %w", err)
	}
	return nil
}

// MarkOutcome records a decision's retroactive outcome label.
func (s *Store) MarkOutcome(decisionID string, success bool) error {
	v := 0
	if success {
		v = 1
	}
	_, err := s.db.Exec(
		`UPDATE decision_log SET outcome_known = 1, outcome_success = ? WHERE decision_id = ?`,
		v, decisionID,
	)
	if err != nil {
		return fmt.Errorf("mark outcome %s: %w", decisionID, err)
	}
	return nil
}

// ListDecisions returns the user's most recent decisions, newest first.
func (s *Store) ListDecisions(userID string, limit int) ([]decision.Decision, error) {
	rows, err := s.db.Query(
		`SELECT decision_id, category, rules_json, feedback_json, effects_json,
		        success_rate, outcome_known, outcome_success, created_at
		 FROM decision_log WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []decision.Decision
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDecision retrieves one decision by id.
func (s *Store) GetDecision(decisionID string) (decision.Decision, error) {
	row := s.db.QueryRow(
		`SELECT decision_id, category, rules_json, feedback_json, effects_json,
		        success_rate, outcome_known, outcome_success, created_at
		 FROM decision_log WHERE decision_id = ?`, decisionID,
	)
	d, err := scanDecision(row)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("get decision %s: %w", decisionID, err)
	}
	return d, nil
}

// #endregion decisions

// #region feedback

// SaveFeedback appends a consumed directive to the feedback log.
func (s *Store) SaveFeedback(userID string, d feedback.Directive) error {
	blob, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal directive: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO feedback_log (user_id, directive, created_at) VALUES (?, ?, ?)`,
		userID, string(blob), d.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}

// #endregion feedback

// #region scan

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(r rowScanner) (decision.Decision, error) {
	var d decision.Decision
	var category, createdStr, effectsJSON string
	var rulesJSON, feedbackJSON sql.NullString
	var outcomeKnown, outcomeSuccess int

	err := r.Scan(&d.ID, &category, &rulesJSON, &feedbackJSON, &effectsJSON,
		&d.SuccessRate, &outcomeKnown, &outcomeSuccess, &createdStr)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("scan decision: %w", err)
	}

	d.Signals.Performance = decision.PerformanceCategory(category)
	if rulesJSON.Valid && rulesJSON.String != "" {
		var tr []rules.Triggered
		if err := json.Unmarshal([]byte(rulesJSON.String), &tr); err != nil {
			return decision.Decision{}, fmt.Errorf("unmarshal rules: %w", err)
		}
		d.Signals.Rules = tr
	}
	if feedbackJSON.Valid && feedbackJSON.String != "" {
		var fb feedback.Directive
		if err := json.Unmarshal([]byte(feedbackJSON.String), &fb); err != nil {
			return decision.Decision{}, fmt.Errorf("unmarshal feedback: %w", err)
		}
		d.Signals.Feedback = &fb
	}
	var set effects.EffectSet
	if err := json.Unmarshal([]byte(effectsJSON), &set); err != nil {
		return decision.Decision{}, fmt.Errorf("unmarshal effects: %w", err)
	}
	d.Effects = set
	d.OutcomeKnown = outcomeKnown == 1
	d.OutcomeSuccess = outcomeSuccess == 1
	d.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
	return d, nil
}

// #endregion scan

// Package episode persists played episodes and their per-command outcomes
// in SQLite, giving agent runs a durable, inspectable trail.
package episode

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id  TEXT PRIMARY KEY,
	variant     TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	ended_at    TEXT
);

CREATE TABLE IF NOT EXISTS invocations (
	invocation_id TEXT PRIMARY KEY,
	episode_id    TEXT NOT NULL,
	command       TEXT NOT NULL,
	action        TEXT NOT NULL,
	params_json   TEXT,
	outcome       INTEGER NOT NULL,
	snapshots     INTEGER NOT NULL,
	steps_taken   INTEGER,
	rotated       INTEGER,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	invocation_id TEXT NOT NULL,
	mode_before   INTEGER NOT NULL,
	mode_after    INTEGER NOT NULL,
	stop_reason   TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (invocation_id) REFERENCES invocations(invocation_id)
);
`

// #endregion schema

// #region store-struct

// Store manages episode history in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region begin-episode

// BeginEpisode records the start of a new episode.
func (s *Store) BeginEpisode(variant string) (Record, error) {
	rec := Record{
		EpisodeID: uuid.New().String(),
		Variant:   variant,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO episodes (episode_id, variant, started_at) VALUES (?, ?, ?)`,
		rec.EpisodeID, rec.Variant, rec.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert episode: %w", err)
	}
	return rec, nil
}

// EndEpisode stamps an episode's end time.
func (s *Store) EndEpisode(episodeID string) error {
	res, err := s.db.Exec(
		`UPDATE episodes SET ended_at = ? WHERE episode_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), episodeID,
	)
	if err != nil {
		return fmt.Errorf("end episode: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("end episode: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("episode %s not found", episodeID)
	}
	return nil
}

// #endregion begin-episode

// #region record-invocation

// RecordInvocation inserts an invocation and its decision trail atomically.
// The invocation ID is assigned here and returned.
func (s *Store) RecordInvocation(inv Invocation, dec Decision) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var stepsPtr interface{}
	if inv.StepsTaken != nil {
		stepsPtr = *inv.StepsTaken
	}
	var rotatedPtr interface{}
	if inv.Rotated != nil {
		rotatedPtr = boolToInt(*inv.Rotated)
	}
	var paramsPtr interface{}
	if inv.ParamsJSON != "" {
		paramsPtr = inv.ParamsJSON
	}

	_, err = tx.Exec(
		`INSERT INTO invocations (invocation_id, episode_id, command, action, params_json, outcome, snapshots, steps_taken, rotated, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, inv.EpisodeID, inv.Command, inv.Action, paramsPtr,
		inv.Outcome, inv.Snapshots, stepsPtr, rotatedPtr, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert invocation: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO decision_log (invocation_id, mode_before, mode_after, stop_reason, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, dec.ModeBefore, dec.ModeAfter, dec.StopReason, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert decision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// #endregion record-invocation

// #region list-episodes

// ListEpisodes returns the most recent episodes.
func (s *Store) ListEpisodes(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, variant, started_at, ended_at
		 FROM episodes ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var startedStr string
		var endedStr sql.NullString
		if err := rows.Scan(&rec.EpisodeID, &rec.Variant, &startedStr, &endedStr); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		if endedStr.Valid {
			ended, _ := time.Parse(time.RFC3339Nano, endedStr.String)
			rec.EndedAt = &ended
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-episodes

// #region list-invocations

// ListInvocations returns an episode's invocations in execution order.
func (s *Store) ListInvocations(episodeID string) ([]Invocation, error) {
	rows, err := s.db.Query(
		`SELECT invocation_id, episode_id, command, action, params_json, outcome, snapshots, steps_taken, rotated, created_at
		 FROM invocations WHERE episode_id = ? ORDER BY created_at ASC`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer rows.Close()

	var records []Invocation
	for rows.Next() {
		var inv Invocation
		var paramsJSON sql.NullString
		var steps sql.NullInt64
		var rotated sql.NullInt64
		var createdStr string
		if err := rows.Scan(&inv.InvocationID, &inv.EpisodeID, &inv.Command, &inv.Action,
			&paramsJSON, &inv.Outcome, &inv.Snapshots, &steps, &rotated, &createdStr); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		if paramsJSON.Valid {
			inv.ParamsJSON = paramsJSON.String
		}
		if steps.Valid {
			n := int(steps.Int64)
			inv.StepsTaken = &n
		}
		if rotated.Valid {
			r := rotated.Int64 != 0
			inv.Rotated = &r
		}
		inv.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, inv)
	}
	return records, rows.Err()
}

// Decisions returns the decision trail for one invocation.
func (s *Store) Decisions(invocationID string) ([]Decision, error) {
	rows, err := s.db.Query(
		`SELECT invocation_id, mode_before, mode_after, stop_reason, created_at
		 FROM decision_log WHERE invocation_id = ? ORDER BY id ASC`, invocationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var records []Decision
	for rows.Next() {
		var dec Decision
		var createdStr string
		if err := rows.Scan(&dec.InvocationID, &dec.ModeBefore, &dec.ModeAfter, &dec.StopReason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		dec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, dec)
	}
	return records, rows.Err()
}

// #endregion list-invocations

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

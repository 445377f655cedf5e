// Package draft persists onboarding drafts in a local SQLite database, so a
// half-finished application survives process restarts and crashes.
package draft

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"artdistrict/internal/onboarding"
)

const schema = `
CREATE TABLE IF NOT EXISTS onboarding_drafts (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	step INTEGER NOT NULL,
	plan TEXT NOT NULL,
	form TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store is a SQLite-backed onboarding.DraftStore. A single row holds the
// draft; saving replaces it.
type Store struct {
	db *sql.DB
}

// Open creates or opens the draft database at path, applying the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create draft directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply draft schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements onboarding.DraftStore.
func (s *Store) Load() (*onboarding.Draft, error) {
	var (
		step     int
		plan     string
		formJSON string
	)
	row := s.db.QueryRow(`SELECT step, plan, form FROM onboarding_drafts WHERE id = 1`)
	if err := row.Scan(&step, &plan, &formJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var form onboarding.Form
	if err := json.Unmarshal([]byte(formJSON), &form); err != nil {
		return nil, fmt.Errorf("failed to parse draft form: %w", err)
	}
	return &onboarding.Draft{
		Step: onboarding.Step(step),
		Form: &form,
		Plan: onboarding.Plan(plan),
	}, nil
}

// Save implements onboarding.DraftStore.
func (s *Store) Save(d *onboarding.Draft) error {
	formJSON, err := json.Marshal(d.Form)
	if err != nil {
		return fmt.Errorf("failed to encode draft form: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO onboarding_drafts (id, step, plan, form, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			step = excluded.step,
			plan = excluded.plan,
			form = excluded.form,
			updated_at = excluded.updated_at`,
		int(d.Step), string(d.Plan), string(formJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Clear implements onboarding.DraftStore.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM onboarding_drafts WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

var _ onboarding.DraftStore = (*Store)(nil)

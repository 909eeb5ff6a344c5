// Package prefs persists the handful of UI preferences that survive a
// restart. Currently that is a single boolean: dark mode.
package prefs

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Schema for the preferences table, applied on Open.
const Schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const darkModeKey = "darkMode"

// Store is a fixed-key KV store backed by SQLite. Values are read once at
// startup and written through on every change.
type Store struct {
	db *sql.DB

	mu       sync.Mutex
	darkMode bool
}

// Open opens (creating if needed) the preference database at path and loads
// the persisted values.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing preference store: %w", err)
	}

	s := &Store{db: db}

	var value string
	err = db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, darkModeKey).Scan(&value)
	switch err {
	case nil:
		s.darkMode = value == "true"
	case sql.ErrNoRows:
		// first run, light theme
	default:
		db.Close()
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	return s, nil
}

// DarkMode returns the current dark-mode preference
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetDarkMode updates the preference and writes it through to disk
func (s *Store) SetDarkMode(on bool) error {
	value := "false"
	if on {
		value = "true"
	}

	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		darkModeKey, value,
	)
	if err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}

	s.mu.Lock()
	s.darkMode = on
	s.mu.Unlock()
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

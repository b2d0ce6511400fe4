// Package session persists the pattern list of an interactive session so it
// can be restored on the next start.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultPath is the session file used by the walter binary.
const DefaultPath = ".walter-session.tmp"

// State is what a session file holds.
type State struct {
	Patterns []string  `json:"patterns"`
	TextFile string    `json:"text_file,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store reads and writes one session file.
type Store struct {
	Path string
}

// NewStore returns a Store for path, or DefaultPath if path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Save writes state to the session file. A state without patterns removes
// the file instead.
func (s *Store) Save(state State) error {
	if len(state.Patterns) == 0 {
		// Nothing worth restoring
		return s.Delete()
	}
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the session file. A missing file yields an empty State.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return state, nil
}

// Exists returns true if a session file exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Delete removes the session file.
func (s *Store) Delete() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

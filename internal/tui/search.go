package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"git.sr.ht/~jakintosh/walter/internal/automaton"
	"git.sr.ht/~jakintosh/walter/internal/core"
	"git.sr.ht/~jakintosh/walter/internal/session"
)

// search compiles the patterns in the input and scans the text with them
func (m *Model) search() {
	patterns := strings.Fields(m.input.Value())
	a, err := automaton.Compile(patterns...)
	if err != nil {
		m.automaton = nil
		m.matches = nil
		m.summary = core.ScanSummary{}
		if errors.Is(err, core.ErrNoPatterns) {
			m.setStatus("Enter at least one pattern", statusInfo, statusDuration)
		} else {
			m.setStatus(fmt.Sprintf("Invalid patterns: %v", err), statusError, statusDuration)
		}
		return
	}

	m.automaton = a
	m.matches, m.summary = a.ScanWithSummary(m.text)
	m.setStatus(
		fmt.Sprintf("%d match(es) for %d pattern(s)", len(m.matches), a.Patterns().Len()),
		statusSuccess,
		statusDuration,
	)
}

// toggleView switches between the match list and the node table
func (m *Model) toggleView() {
	if m.currentView == viewMatches {
		m.currentView = viewNodes
		return
	}
	m.currentView = viewMatches
}

// saveSession records the current patterns, if a store is configured. It
// runs on quit, so a failure is kept for SaveErr instead of the status line.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}
	state := session.State{
		Patterns: strings.Fields(m.input.Value()),
		TextFile: m.textFile,
	}
	m.saveErr = m.store.Save(state)
}

// SaveErr returns the error of the session save performed on quit, if any
func (m *Model) SaveErr() error {
	return m.saveErr
}

// setStatus sets a temporary status message with the given duration
func (m *Model) setStatus(message string, kind statusKind, duration time.Duration) {
	m.statusMessage = message
	m.statusKind = kind
	m.statusExpiry = time.Now().Add(duration)
}

// statusLine returns the current status message if it hasn't expired
func (m *Model) statusLine() string {
	if m.statusMessage == "" {
		return ""
	}
	if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
		return ""
	}
	return formatStatus(m.statusMessage, m.statusKind)
}

// Matches returns the matches of the last successful search
func (m *Model) Matches() []core.Match {
	return append([]core.Match(nil), m.matches...)
}

// Automaton returns the automaton of the last successful search, or nil
func (m *Model) Automaton() *automaton.Automaton {
	return m.automaton
}

func joinPatterns(patterns []string) string {
	return strings.Join(patterns, " ")
}

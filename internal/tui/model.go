// Package tui implements an interactive explorer for walter. The user types
// a space separated pattern list, the explorer compiles it into a
// Commentz-Walter automaton and shows the text with every occurrence
// highlighted, the match list, or the per-node shift tables.
package tui

import (
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/walter/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates an explorer over text. textFile is only used for display
// and for the session record. A nil store disables session persistence.
func NewModel(text, textFile string, store *session.Store) *Model {
	input := textinput.New()
	input.Prompt = "patterns> "
	input.Placeholder = "he she his hers"
	input.CharLimit = patternInputLimit
	input.Focus()

	return &Model{
		text:        text,
		textFile:    textFile,
		store:       store,
		input:       input,
		currentView: viewMatches,
		windowWidth: defaultTextWidth,
	}
}

// SetPatterns fills the pattern input and searches with it
func (m *Model) SetPatterns(patterns []string) {
	m.input.SetValue(joinPatterns(patterns))
	m.input.CursorEnd()
	m.search()
}

// Init initializes the model and returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} }),
	)
}

// Update handles incoming messages and updates the model state
func (m *Model) Update(msg tea.Msg) (updated tea.Model, cmd tea.Cmd) {
	defer func() {
		if recovered := recover(); recovered != nil {
			m.err = fmt.Errorf("unexpected internal error: %v", recovered)
			updated = m
			cmd = nil
		}
	}()

	if m.err != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+q", "ctrl+c", "esc":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.windowWidth = msg.Width
		}
		return m, nil
	case statusTick:
		if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
			m.statusMessage = ""
			m.statusExpiry = time.Time{}
		}
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} })
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes key presses to explorer actions or the pattern input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q", "esc":
		m.saveSession()
		return m, tea.Quit
	case "enter":
		m.search()
		return m, nil
	case "tab":
		m.toggleView()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the explorer
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress ctrl+q to quit.", m.err)
	}
	return m.render()
}

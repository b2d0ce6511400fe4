package tui

import (
	"time"

	"git.sr.ht/~jakintosh/walter/internal/automaton"
	"git.sr.ht/~jakintosh/walter/internal/core"
	"git.sr.ht/~jakintosh/walter/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
)

// Constants define UI behavior
const (
	statusDuration    = 5 * time.Second
	maxMatchDisplay   = 10
	maxNodeDisplay    = 20
	defaultTextWidth  = 80
	patternInputLimit = 1024
)

// viewState represents the panel shown under the text
type viewState int

const (
	viewMatches viewState = iota
	viewNodes
)

// statusKind represents the type of status message being displayed
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// Model is the application state of the interactive explorer
type Model struct {
	text     string
	textFile string
	store    *session.Store

	input       textinput.Model
	automaton   *automaton.Automaton
	matches     []core.Match
	summary     core.ScanSummary
	currentView viewState

	windowWidth   int
	statusMessage string
	statusKind    statusKind
	statusExpiry  time.Time
	saveErr       error
	err           error
}

// statusTick is sent periodically to update status message expiry
type statusTick struct{}

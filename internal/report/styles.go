package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the colors used for command line output. They are bound to
// a renderer for the output writer, so piped output carries no escapes.
type styles struct {
	pattern  lipgloss.Style // Cyan
	index    lipgloss.Style // Yellow
	node     lipgloss.Style // Bright magenta
	endNode  lipgloss.Style // Green
	heading  lipgloss.Style // Bold
	dimmed   lipgloss.Style // Dark grey
	notFound lipgloss.Style // Red
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		pattern:  r.NewStyle().Foreground(lipgloss.Color("14")),
		index:    r.NewStyle().Foreground(lipgloss.Color("11")),
		node:     r.NewStyle().Foreground(lipgloss.Color("13")),
		endNode:  r.NewStyle().Foreground(lipgloss.Color("10")),
		heading:  r.NewStyle().Bold(true),
		dimmed:   r.NewStyle().Foreground(lipgloss.Color("8")),
		notFound: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

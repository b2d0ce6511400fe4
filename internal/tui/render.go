package tui

import (
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/walter/internal/core"
	"github.com/charmbracelet/lipgloss"
)

// render displays the explorer screen
func (m *Model) render() string {
	var b strings.Builder
	title := "-- walter --"
	if m.textFile != "" {
		title = fmt.Sprintf("-- walter: %s --", m.textFile)
	}
	fmt.Fprintf(&b, "%s\n\n", headingColor.Render(title))

	b.WriteString(lipgloss.NewStyle().Width(m.windowWidth).Render(m.highlightedText()))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s\n\n", m.input.View())

	switch m.currentView {
	case viewNodes:
		b.WriteString(m.renderNodes())
	default:
		b.WriteString(m.renderMatches())
	}

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	b.WriteString("\n")
	b.WriteString(formatHint("[enter]search  [tab]matches/nodes  [esc]quit"))
	return b.String()
}

// highlightedText renders the text with every matched rune highlighted
func (m *Model) highlightedText() string {
	runes := []rune(m.text)
	covered := coverage(len(runes), m.matches)

	var b strings.Builder
	start := 0
	for start < len(runes) {
		end := start
		for end < len(runes) && covered[end] == covered[start] {
			end++
		}
		segment := string(runes[start:end])
		if covered[start] {
			segment = highlightColor.Render(segment)
		}
		b.WriteString(segment)
		start = end
	}
	return b.String()
}

// coverage marks every rune position that lies inside some match
func coverage(n int, matches []core.Match) []bool {
	covered := make([]bool, n)
	for _, match := range matches {
		for i := match.Index; i <= match.End() && i < n; i++ {
			covered[i] = true
		}
	}
	return covered
}

// renderMatches displays the match list and scan summary
func (m *Model) renderMatches() string {
	if m.automaton == nil {
		return "No patterns compiled.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Matches (%d) --\n", len(m.matches))
	if len(m.matches) == 0 {
		b.WriteString("No matches.\n")
	}
	for i, match := range m.matches {
		if i == maxMatchDisplay {
			fmt.Fprintf(&b, "... %d more\n", len(m.matches)-maxMatchDisplay)
			break
		}
		fmt.Fprintf(&b, "%s\n", formatMatch(match.Pattern, match.Index))
	}
	fmt.Fprintf(
		&b,
		"\ninspected %d of %d characters (rate %s), %d windows, average shift %s\n",
		m.summary.Inspected,
		m.summary.TextLength,
		m.summary.InspectionRate().StringFixed(2),
		m.summary.Windows,
		m.summary.AverageShift().StringFixed(2),
	)
	return b.String()
}

// renderNodes displays the shift tables of the automaton
func (m *Model) renderNodes() string {
	if m.automaton == nil {
		return "No patterns compiled.\n"
	}

	nodes := m.automaton.Nodes()
	var b strings.Builder
	fmt.Fprintf(
		&b,
		"-- Nodes (%d, pmin %d) --\n",
		len(nodes),
		m.automaton.Patterns().MinLength(),
	)
	b.WriteString("node depth label  s1  s2 fail\n")
	for i, node := range nodes {
		if i == maxNodeDisplay {
			fmt.Fprintf(&b, "... %d more\n", len(nodes)-maxNodeDisplay)
			break
		}
		label := "-"
		if node.ID != 0 {
			label = string(node.Label)
		}
		line := fmt.Sprintf("%4d %5d %5s %3d %3d %4d", node.ID, node.Depth, label, node.S1, node.S2, node.Failure)
		if node.End {
			line = endNodeColor.Render(line)
		}
		fmt.Fprintf(&b, "%s\n", line)
	}
	return b.String()
}

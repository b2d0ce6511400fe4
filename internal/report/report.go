// Package report writes walter's command line output.
package report

import (
	"fmt"
	"io"
	"strconv"

	"git.sr.ht/~jakintosh/walter/internal/automaton"
	"git.sr.ht/~jakintosh/walter/internal/core"
	"git.sr.ht/~jakintosh/walter/internal/textfile"
)

// Printer formats results onto one writer.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: newStyles(w)}
}

// Matches prints one "PATTERN : INDEX" line per match.
func (p *Printer) Matches(matches []core.Match) {
	for _, m := range matches {
		p.match("", m)
	}
}

// LineMatches prints the matches of a multi-line scan, each prefixed with
// its line number.
func (p *Printer) LineMatches(lines []automaton.LineMatches) {
	for _, line := range lines {
		prefix := p.styles.dimmed.Render(fmt.Sprintf("line %d: ", line.Line))
		for _, m := range line.Matches {
			p.match(prefix, m)
		}
	}
}

func (p *Printer) match(prefix string, m core.Match) {
	fmt.Fprintf(p.w, "%s%s : %s\n",
		prefix,
		p.styles.pattern.Render(m.Pattern),
		p.styles.index.Render(strconv.Itoa(m.Index)),
	)
}

// NodeTable prints one "NODE: S1,S2" line per node. End nodes are
// highlighted.
func (p *Printer) NodeTable(nodes []automaton.NodeInfo) {
	for _, n := range nodes {
		id := p.styles.node.Render(strconv.Itoa(n.ID))
		if n.End {
			id = p.styles.endNode.Render(strconv.Itoa(n.ID))
		}
		fmt.Fprintf(p.w, "%s: %d,%d\n", id, n.S1, n.S2)
	}
}

// AutomatonHeader prints a one line description of a built automaton.
func (p *Printer) AutomatonHeader(a *automaton.Automaton) {
	line := fmt.Sprintf("automaton: %d patterns, %d nodes, pmin %d, fingerprint %016x",
		a.Patterns().Len(), a.Len(), a.Patterns().MinLength(), a.Fingerprint())
	fmt.Fprintln(p.w, p.styles.heading.Render(line))
}

// Summary prints scan statistics.
func (p *Printer) Summary(s core.ScanSummary) {
	fmt.Fprintln(p.w, p.styles.heading.Render("summary:"))
	fmt.Fprintf(p.w, "  text length:     %d\n", s.TextLength)
	fmt.Fprintf(p.w, "  matches:         %d\n", s.Matches)
	fmt.Fprintf(p.w, "  windows:         %d\n", s.Windows)
	fmt.Fprintf(p.w, "  inspected:       %d\n", s.Inspected)
	fmt.Fprintf(p.w, "  inspection rate: %s\n", s.InspectionRate().StringFixed(2))
	fmt.Fprintf(p.w, "  average shift:   %s\n", s.AverageShift().StringFixed(2))
}

// NotFound prints the missing file message.
func (p *Printer) NotFound() {
	fmt.Fprintln(p.w, p.styles.notFound.Render(textfile.ErrFileNotFound.Error()))
}

package automaton

import (
	"git.sr.ht/~jakintosh/walter/internal/core"
)

// Step records one window alignment of a scan.
type Step struct {
	Window  int // index of the window's right edge in the text
	Matched int // characters matched right to left before the attempt stalled
	Node    int // trie node the attempt stalled on
	Shift   int // advance applied to Window afterwards
}

// Scan returns every occurrence of every pattern in text, in the order the
// scan discovers them: by window position, then shortest match first.
func (a *Automaton) Scan(text string) []core.Match {
	matches, _ := a.scan([]rune(text), nil)
	return matches
}

// ScanWithSummary is Scan plus statistics about the work done.
func (a *Automaton) ScanWithSummary(text string) ([]core.Match, core.ScanSummary) {
	return a.scan([]rune(text), nil)
}

// Trace scans text and calls visit once per window alignment after the
// shift for that window is known.
func (a *Automaton) Trace(text string, visit func(Step)) []core.Match {
	matches, _ := a.scan([]rune(text), visit)
	return matches
}

// scan runs the right-to-left matching loop. All state is local, so
// concurrent calls on one Automaton do not interfere.
func (a *Automaton) scan(text []rune, visit func(Step)) ([]core.Match, core.ScanSummary) {
	var (
		matches []core.Match
		summary = core.ScanSummary{TextLength: len(text)}
		i       = a.tables.pmin - 1
		m       []rune // matched characters in scan order, i.e. reversed
	)

	for i < len(text) {
		j, u := 0, Root
		m = m[:0]

		for i-j >= 0 {
			c := text[i-j]
			summary.Inspected++
			next, ok := a.trie.Child(u, c)
			if !ok {
				break
			}
			u = next
			m = append(m, c)
			j++
			if a.trie.IsEnd(u) {
				matches = append(matches, core.Match{
					Pattern: string(core.Reverse(m)),
					Index:   i - j + 1,
				})
			}
		}

		if j > i {
			j = i
		}
		s := a.tables.shift(u, j, text[i-j])

		summary.Windows++
		summary.ShiftTotal += s
		if visit != nil {
			visit(Step{Window: i, Matched: j, Node: u, Shift: s})
		}
		i += s
	}

	summary.Matches = len(matches)
	return matches, summary
}

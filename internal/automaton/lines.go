package automaton

import (
	"context"
	"runtime"

	"git.sr.ht/~jakintosh/walter/internal/core"
	"golang.org/x/sync/errgroup"
)

// LineMatches holds the result of scanning one line of a multi-line text.
type LineMatches struct {
	Line    int // 1-based line number
	Matches []core.Match
	Summary core.ScanSummary
}

// ScanLines scans every line with the same automaton on up to workers
// goroutines. Results come back in line order. A cancelled ctx stops lines
// that have not started yet and its error is returned.
func (a *Automaton) ScanLines(ctx context.Context, lines []string, workers int) ([]LineMatches, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]LineMatches, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, summary := a.ScanWithSummary(line)
			results[n] = LineMatches{Line: n + 1, Matches: matches, Summary: summary}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

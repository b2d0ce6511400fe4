package core

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Match is a single occurrence of a pattern in a text.
type Match struct {
	Pattern string // the pattern as given, not reversed
	Index   int    // rune offset of the leftmost character of the occurrence
}

// String formats the match the way the command line prints it.
func (m Match) String() string {
	return fmt.Sprintf("%s : %d", m.Pattern, m.Index)
}

// End returns the rune offset of the last character of the occurrence.
func (m Match) End() int {
	return m.Index + utf8.RuneCountInString(m.Pattern) - 1
}

// PatternSet is a validated, length-ordered collection of search patterns.
type PatternSet struct {
	patterns []string
	pmin     int
}

// NewPatternSet validates the given patterns and orders them by length.
// Patterns of equal length keep their original relative order.
func NewPatternSet(patterns []string) (PatternSet, error) {
	if len(patterns) == 0 {
		return PatternSet{}, ErrNoPatterns
	}

	sorted := make([]string, len(patterns))
	copy(sorted, patterns)
	for i, p := range sorted {
		if p == "" {
			return PatternSet{}, fmt.Errorf("pattern %d: %w", i+1, ErrEmptyPattern)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) < utf8.RuneCountInString(sorted[j])
	})

	return PatternSet{
		patterns: sorted,
		pmin:     utf8.RuneCountInString(sorted[0]),
	}, nil
}

// Patterns returns a copy of the patterns, shortest first.
func (ps PatternSet) Patterns() []string {
	out := make([]string, len(ps.patterns))
	copy(out, ps.patterns)
	return out
}

// Len returns the number of patterns, duplicates included.
func (ps PatternSet) Len() int {
	return len(ps.patterns)
}

// MinLength returns the rune length of the shortest pattern.
func (ps PatternSet) MinLength() int {
	return ps.pmin
}

// Reversed returns every pattern with its runes in reverse order, in the
// same order as Patterns.
func (ps PatternSet) Reversed() [][]rune {
	out := make([][]rune, len(ps.patterns))
	for i, p := range ps.patterns {
		out[i] = Reverse([]rune(p))
	}
	return out
}

// Reverse returns a reversed copy of runes.
func Reverse(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = r
	}
	return out
}

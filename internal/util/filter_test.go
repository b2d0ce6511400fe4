package util

import (
	"testing"

	"git.sr.ht/~jakintosh/walter/internal/automaton"
)

func sampleNodes() []automaton.NodeInfo {
	return []automaton.NodeInfo{
		{ID: 0, Depth: 0, Failure: 0, S1: 1, S2: 2},
		{ID: 1, Depth: 1, Label: 'e', Failure: 0, S1: 2, S2: 2},
		{ID: 2, Depth: 2, Label: 'h', End: true, Failure: 0, S1: 2, S2: 2},
		{ID: 3, Depth: 3, Label: 's', End: true, Failure: 4, S1: 2, S2: 1},
	}
}

func TestNodeFilter(t *testing.T) {
	tests := []struct {
		expression string
		expected   []int
		shouldErr  bool
	}{
		// Empty keeps everything
		{"", []int{0, 1, 2, 3}, false},
		{"   ", []int{0, 1, 2, 3}, false},

		// Single variables
		{"end", []int{2, 3}, false},
		{"depth > 1", []int{2, 3}, false},
		{"node == 0", []int{0}, false},
		{"label == 'h'", []int{2}, false},

		// Combinations
		{"end && s2 < s1", []int{3}, false},
		{"depth >= 1 && failure != 0", []int{3}, false},
		{"!(end) || s1 == 1", []int{0, 1}, false},

		// Error cases
		{"depth >", nil, true},
		{"weight > 1", nil, true},
		{"depth + 1", nil, true},
	}

	for _, test := range tests {
		filter, err := CompileNodeFilter(test.expression)
		if err == nil {
			var kept []automaton.NodeInfo
			kept, err = filter.Apply(sampleNodes())
			if err == nil {
				var ids []int
				for _, n := range kept {
					ids = append(ids, n.ID)
				}
				if !test.shouldErr && !equalInts(ids, test.expected) {
					t.Errorf("For filter '%s': expected %v, got %v", test.expression, test.expected, ids)
				}
			}
		}

		if test.shouldErr && err == nil {
			t.Errorf("Expected error for filter '%s'", test.expression)
		}
		if !test.shouldErr && err != nil {
			t.Errorf("Unexpected error for filter '%s': %v", test.expression, err)
		}
	}
}

func TestNodeFilterString(t *testing.T) {
	filter, err := CompileNodeFilter("  end  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.String() != "end" {
		t.Errorf("expected trimmed source, got %q", filter.String())
	}
}

func TestNodeFilterOnBuiltAutomaton(t *testing.T) {
	a, err := automaton.Compile("he", "she", "his", "hers")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	filter, err := CompileNodeFilter("end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kept, err := filter.Apply(a.Nodes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 4 {
		t.Errorf("expected one end node per pattern, got %d", len(kept))
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package util

import (
	"fmt"
	"slices"
	"strings"

	"git.sr.ht/~jakintosh/walter/internal/automaton"
	"github.com/Knetic/govaluate"
)

// FilterVariables lists the names a node filter expression may use.
var FilterVariables = []string{"node", "depth", "s1", "s2", "end", "failure", "label"}

// NodeFilter is a compiled boolean expression over the fields of a trie
// node, e.g. "depth > 1 && s2 < s1" or "end".
type NodeFilter struct {
	source     string
	expression *govaluate.EvaluableExpression
}

// CompileNodeFilter parses expr. An empty expression keeps every node.
func CompileNodeFilter(expr string) (*NodeFilter, error) {
	cleanExpr := strings.TrimSpace(expr)
	if cleanExpr == "" {
		return &NodeFilter{}, nil
	}

	expression, err := govaluate.NewEvaluableExpression(cleanExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	for _, name := range expression.Vars() {
		if !slices.Contains(FilterVariables, name) {
			return nil, fmt.Errorf("invalid filter: unknown variable %q (known: %s)", name, strings.Join(FilterVariables, ", "))
		}
	}

	return &NodeFilter{source: cleanExpr, expression: expression}, nil
}

// String returns the expression the filter was compiled from.
func (f *NodeFilter) String() string {
	return f.source
}

// Keep evaluates the filter for one node.
func (f *NodeFilter) Keep(n automaton.NodeInfo) (bool, error) {
	if f.expression == nil {
		return true, nil
	}

	// govaluate compares numbers as float64
	result, err := f.expression.Evaluate(map[string]interface{}{
		"node":    float64(n.ID),
		"depth":   float64(n.Depth),
		"s1":      float64(n.S1),
		"s2":      float64(n.S2),
		"end":     n.End,
		"failure": float64(n.Failure),
		"label":   string(n.Label),
	})
	if err != nil {
		return false, fmt.Errorf("evaluation error: %w", err)
	}

	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q evaluates to %v, not true or false", f.source, result)
	}
	return keep, nil
}

// Apply returns the nodes the filter keeps, in their original order.
func (f *NodeFilter) Apply(nodes []automaton.NodeInfo) ([]automaton.NodeInfo, error) {
	kept := make([]automaton.NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		keep, err := f.Keep(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		if keep {
			kept = append(kept, n)
		}
	}
	return kept, nil
}

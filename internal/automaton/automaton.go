// Package automaton implements Commentz-Walter multi-pattern matching.
//
// Build turns a pattern set into an immutable Automaton: a trie of the
// reversed patterns, its failure links and the s1, s2 and rt shift tables.
// The Automaton scans texts right to left inside a sliding window and
// advances the window by the largest shift the tables prove safe. A built
// Automaton is read-only, so any number of goroutines may scan with it at
// the same time.
package automaton

import (
	"cmp"
	"encoding/binary"
	"slices"

	"git.sr.ht/~jakintosh/walter/internal/core"
	"github.com/cespare/xxhash/v2"
)

// Automaton is a compiled pattern set.
type Automaton struct {
	patterns core.PatternSet
	trie     *Trie
	levels   levels
	failure  []int
	tables   shiftTables
}

// NodeInfo describes one trie node and its shift table entries.
type NodeInfo struct {
	ID      int
	Depth   int
	Label   rune // rune on the incoming edge; 0 for the root
	End     bool
	Failure int
	S1      int
	S2      int
}

// Build compiles a validated pattern set. Construction cannot fail: shared
// suffixes, single rune patterns and duplicates are all handled.
func Build(ps core.PatternSet) *Automaton {
	trie := NewTrie()
	for _, reversed := range ps.Reversed() {
		trie.Insert(reversed)
	}

	lv := computeLevels(trie)
	failure := buildFailure(trie, lv.order)

	return &Automaton{
		patterns: ps,
		trie:     trie,
		levels:   lv,
		failure:  failure,
		tables:   buildShiftTables(trie, lv, failure, ps.MinLength()),
	}
}

// Compile validates raw patterns and builds an Automaton from them.
func Compile(patterns ...string) (*Automaton, error) {
	ps, err := core.NewPatternSet(patterns)
	if err != nil {
		return nil, err
	}
	return Build(ps), nil
}

// Patterns returns the pattern set the automaton was built from.
func (a *Automaton) Patterns() core.PatternSet {
	return a.patterns
}

// Trie returns the trie of reversed patterns. Callers must not modify it.
func (a *Automaton) Trie() *Trie {
	return a.trie
}

// Len returns the number of trie nodes.
func (a *Automaton) Len() int {
	return a.trie.Len()
}

// Depth returns the distance of node from the root, or false if node is not
// part of the trie.
func (a *Automaton) Depth(node int) (int, bool) {
	return a.levels.Depth(node)
}

// Failure returns the failure link of node.
func (a *Automaton) Failure(node int) int {
	return a.failure[node]
}

// S1 returns the s1 shift of node.
func (a *Automaton) S1(node int) int {
	return a.tables.s1[node]
}

// S2 returns the s2 shift of node.
func (a *Automaton) S2(node int) int {
	return a.tables.s2[node]
}

// Rightmost returns rt[c]: the smallest depth at which c labels an edge, or
// the shortest pattern length plus one if it labels none.
func (a *Automaton) Rightmost(c rune) int {
	return a.tables.rightmost(c)
}

// Set1 returns the nodes whose failure link is node.
func (a *Automaton) Set1(node int) []int {
	return append([]int(nil), a.tables.set1[node]...)
}

// Set2 returns the end nodes whose failure chain passes through node.
func (a *Automaton) Set2(node int) []int {
	return append([]int(nil), a.tables.set2[node]...)
}

// Nodes returns one NodeInfo per trie node in id order.
func (a *Automaton) Nodes() []NodeInfo {
	nodes := make([]NodeInfo, a.trie.Len())
	for id := range nodes {
		nodes[id] = NodeInfo{
			ID:      id,
			Depth:   a.levels.depth[id],
			Label:   a.trie.Label(id),
			End:     a.trie.IsEnd(id),
			Failure: a.failure[id],
			S1:      a.tables.s1[id],
			S2:      a.tables.s2[id],
		}
	}
	return nodes
}

// Fingerprint hashes the trie shape in breadth-first order: per node its
// end flag, then the labels of its outgoing edges in label order. Two
// automata built from the same pattern set share a fingerprint whatever
// their node numbering.
func (a *Automaton) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [4]byte

	queue := []int{Root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if a.trie.IsEnd(u) {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}

		edges := sortedEdges(a.trie.nodes[u].edges)
		binary.BigEndian.PutUint32(buf[:], uint32(len(edges)))
		h.Write(buf[:])
		for _, e := range edges {
			binary.BigEndian.PutUint32(buf[:], uint32(e.label))
			h.Write(buf[:])
			queue = append(queue, e.to)
		}
	}
	return h.Sum64()
}

// sortedEdges returns a copy of edges ordered by label.
func sortedEdges(edges []edge) []edge {
	out := append([]edge(nil), edges...)
	slices.SortFunc(out, func(x, y edge) int { return cmp.Compare(x.label, y.label) })
	return out
}

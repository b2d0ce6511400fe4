package automaton

// shiftTables holds the precomputed window advances of a Commentz-Walter
// automaton.
type shiftTables struct {
	s1   []int
	s2   []int
	rt   map[rune]int
	set1 [][]int // set1[v]: nodes whose failure link is v
	set2 [][]int // set2[v]: end nodes whose failure chain passes through v
	pmin int
}

// buildRightmost returns, for every rune labeling some edge, the minimum
// depth of a node entered by that rune. Runes absent from the map behave as
// pmin+1 (see shiftTables.rightmost).
func buildRightmost(t *Trie, lv levels) map[rune]int {
	rt := make(map[rune]int)
	for node := 1; node < t.Len(); node++ {
		c := t.Label(node)
		d := lv.depth[node]
		if cur, ok := rt[c]; !ok || d < cur {
			rt[c] = d
		}
	}
	return rt
}

// buildSets groups nodes by failure target (set1) and records, for every node
// on an end node's failure chain, that end node (set2).
func buildSets(t *Trie, failure []int) (set1, set2 [][]int) {
	set1 = make([][]int, t.Len())
	set2 = make([][]int, t.Len())
	for u := 1; u < t.Len(); u++ {
		v := failure[u]
		if v != Root {
			set1[v] = append(set1[v], u)
		}
		if !t.IsEnd(u) {
			continue
		}
		for ; v != Root; v = failure[v] {
			set2[v] = append(set2[v], u)
		}
	}
	return set1, set2
}

// buildShiftTables derives rt, set1, set2, s1 and s2 from a trie, its
// breadth-first levels and its failure links.
func buildShiftTables(t *Trie, lv levels, failure []int, pmin int) shiftTables {
	st := shiftTables{
		s1:   make([]int, t.Len()),
		s2:   make([]int, t.Len()),
		rt:   buildRightmost(t, lv),
		pmin: pmin,
	}
	st.set1, st.set2 = buildSets(t, failure)

	st.s1[Root] = 1
	for u := 1; u < t.Len(); u++ {
		st.s1[u] = minDistance(pmin, lv.depth, u, st.set1[u])
	}

	// parents come first in breadth-first order
	st.s2[Root] = pmin
	for _, u := range lv.order {
		if u == Root {
			continue
		}
		st.s2[u] = minDistance(st.s2[t.Parent(u)], lv.depth, u, st.set2[u])
	}
	return st
}

// minDistance returns the smallest of bound and depth(ut)-depth(u) over
// every ut in nodes.
func minDistance(bound int, depth []int, u int, nodes []int) int {
	for _, ut := range nodes {
		if d := depth[ut] - depth[u]; d < bound {
			bound = d
		}
	}
	return bound
}

// rightmost returns rt[c], defaulting to pmin+1 for runes that label no edge.
func (st shiftTables) rightmost(c rune) int {
	if d, ok := st.rt[c]; ok {
		return d
	}
	return st.pmin + 1
}

// shift returns the safe advance of the window after a match attempt that
// stopped at node u with j characters matched and c as the character that
// could not be followed.
func (st shiftTables) shift(u, j int, c rune) int {
	return min(st.s2[u], max(st.s1[u], st.rightmost(c)-j-1))
}

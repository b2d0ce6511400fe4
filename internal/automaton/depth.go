package automaton

// levels holds the breadth-first layout of a finished trie.
type levels struct {
	order []int // node ids in breadth-first order, root first
	depth []int // depth[node] is the edge count from the root
}

// computeLevels walks the trie breadth first from the root and records the
// visiting order and the depth of every node.
func computeLevels(t *Trie) levels {
	lv := levels{
		order: make([]int, 0, t.Len()),
		depth: make([]int, t.Len()),
	}

	queue := []int{Root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		lv.order = append(lv.order, u)
		for _, v := range t.Children(u) {
			lv.depth[v] = lv.depth[u] + 1
			queue = append(queue, v)
		}
	}
	return lv
}

// Depth returns the number of edges between the root and node. The second
// result is false when node is not part of the trie.
func (lv levels) Depth(node int) (int, bool) {
	if node < 0 || node >= len(lv.depth) {
		return -1, false
	}
	return lv.depth[node], true
}

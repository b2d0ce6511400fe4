package automaton

// buildFailure computes the failure link of every node. order must be a
// breadth-first order of t so that a node's link is final before any of its
// children is processed.
func buildFailure(t *Trie, order []int) []int {
	failure := make([]int, t.Len())
	failure[Root] = Root

	for _, u := range order {
		for _, v := range t.Children(u) {
			if u == Root {
				failure[v] = Root
				continue
			}

			c := t.Label(v)
			ut := failure[u]
			for ut != Root && !t.HasChild(ut, c) {
				ut = failure[ut]
			}
			if next, ok := t.Child(ut, c); ok {
				failure[v] = next
			} else {
				failure[v] = Root
			}
		}
	}
	return failure
}

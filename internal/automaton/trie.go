package automaton

// Root is the node id of the trie root.
const Root = 0

// edge is one labeled transition out of a trie node.
type edge struct {
	label rune
	to    int
}

// trieNode is one arena slot. Edges stay in insertion order so every walk
// over the trie is deterministic.
type trieNode struct {
	edges []edge
	isEnd bool
}

// Trie is an arena-backed prefix tree. Node ids are slice indexes assigned
// in creation order; the root is always node 0.
type Trie struct {
	nodes  []trieNode
	parent []int  // parent[Root] == Root
	label  []rune // rune on the edge entering the node; 0 for the root
}

// NewTrie creates a Trie holding only the root.
func NewTrie() *Trie {
	return &Trie{
		nodes:  []trieNode{{}},
		parent: []int{Root},
		label:  []rune{0},
	}
}

// Insert adds word to the Trie. The walk reuses existing edges rune by rune;
// from the first rune without an edge it appends a fresh chain of nodes.
// The node reached by the last rune is marked as an end node and returned.
func (t *Trie) Insert(word []rune) int {
	current := Root
	for i, r := range word {
		next, ok := t.Child(current, r)
		if !ok {
			current = t.appendChain(current, word[i:])
			break
		}
		current = next
	}
	t.nodes[current].isEnd = true
	return current
}

// appendChain creates one node per rune of rest below from and returns the
// last one.
func (t *Trie) appendChain(from int, rest []rune) int {
	current := from
	for _, r := range rest {
		id := len(t.nodes)
		t.nodes = append(t.nodes, trieNode{})
		t.parent = append(t.parent, current)
		t.label = append(t.label, r)
		t.nodes[current].edges = append(t.nodes[current].edges, edge{label: r, to: id})
		current = id
	}
	return current
}

// Child returns the node reached from node by an edge labeled r.
func (t *Trie) Child(node int, r rune) (int, bool) {
	for _, e := range t.nodes[node].edges {
		if e.label == r {
			return e.to, true
		}
	}
	return Root, false
}

// HasChild reports whether node has an outgoing edge labeled r.
func (t *Trie) HasChild(node int, r rune) bool {
	_, ok := t.Child(node, r)
	return ok
}

// Children returns the ids of node's children in insertion order.
func (t *Trie) Children(node int) []int {
	out := make([]int, len(t.nodes[node].edges))
	for i, e := range t.nodes[node].edges {
		out[i] = e.to
	}
	return out
}

// Parent returns the parent of node. The root is its own parent.
func (t *Trie) Parent(node int) int {
	return t.parent[node]
}

// Label returns the rune on the edge entering node.
func (t *Trie) Label(node int) rune {
	return t.label[node]
}

// IsEnd reports whether the path from the root to node spells a whole word.
func (t *Trie) IsEnd(node int) bool {
	return t.nodes[node].isEnd
}

// Len returns the number of nodes, root included.
func (t *Trie) Len() int {
	return len(t.nodes)
}

// Contains reports whether node is a valid id in this trie.
func (t *Trie) Contains(node int) bool {
	return node >= 0 && node < len(t.nodes)
}

// Word returns the runes on the path from the root to node.
func (t *Trie) Word(node int) []rune {
	var word []rune
	for node != Root {
		word = append(word, t.label[node])
		node = t.parent[node]
	}
	// collected bottom-up
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		word[i], word[j] = word[j], word[i]
	}
	return word
}

package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieInsertSharesPrefixes(t *testing.T) {
	trie := NewTrie()

	words := []string{"eh", "ehs", "sih", "sreh"}
	ends := make([]int, len(words))
	for i, w := range words {
		ends[i] = trie.Insert([]rune(w))
	}

	// e, h, s | s, i, h | r, e, h
	require.Equal(t, 10, trie.Len())
	assert.Equal(t, []int{2, 3, 6, 9}, ends)

	for i, w := range words {
		assert.Equal(t, w, string(trie.Word(ends[i])), "word for end node %d", ends[i])
		assert.True(t, trie.IsEnd(ends[i]))
	}
	assert.False(t, trie.IsEnd(Root))
	assert.False(t, trie.IsEnd(1), "prefix node must not be an end node")
}

func TestTrieDeterministicEdges(t *testing.T) {
	trie := NewTrie()
	trie.Insert([]rune("ab"))
	trie.Insert([]rune("ac"))
	trie.Insert([]rune("b"))

	assert.Equal(t, []int{1, 4}, trie.Children(Root))
	assert.Equal(t, []int{2, 3}, trie.Children(1))

	child, ok := trie.Child(1, 'c')
	require.True(t, ok)
	assert.Equal(t, 3, child)

	_, ok = trie.Child(1, 'z')
	assert.False(t, ok)
	assert.False(t, trie.HasChild(4, 'a'))
}

func TestTrieParentAndLabel(t *testing.T) {
	trie := NewTrie()
	end := trie.Insert([]rune("xyz"))

	assert.Equal(t, 'z', trie.Label(end))
	assert.Equal(t, 'y', trie.Label(trie.Parent(end)))
	assert.Equal(t, Root, trie.Parent(Root))
	assert.Equal(t, Root, trie.Parent(1))
}

func TestTrieDuplicateInsert(t *testing.T) {
	trie := NewTrie()
	first := trie.Insert([]rune("abc"))
	second := trie.Insert([]rune("abc"))

	assert.Equal(t, first, second)
	assert.Equal(t, 4, trie.Len())
}

func TestTrieInsertPrefixOfExisting(t *testing.T) {
	trie := NewTrie()
	long := trie.Insert([]rune("abc"))
	short := trie.Insert([]rune("ab"))

	assert.Equal(t, 4, trie.Len(), "no new nodes for a prefix of an existing word")
	assert.True(t, trie.IsEnd(long))
	assert.True(t, trie.IsEnd(short))
	assert.Equal(t, short, trie.Parent(long))
}

func TestTrieLongWord(t *testing.T) {
	trie := NewTrie()
	word := make([]rune, 100000)
	for i := range word {
		word[i] = 'a' + rune(i%26)
	}
	end := trie.Insert(word)

	assert.Equal(t, len(word), end)
	assert.Equal(t, string(word), string(trie.Word(end)))
}

func TestTrieContains(t *testing.T) {
	trie := NewTrie()
	trie.Insert([]rune("ab"))

	assert.True(t, trie.Contains(Root))
	assert.True(t, trie.Contains(2))
	assert.False(t, trie.Contains(3))
	assert.False(t, trie.Contains(-1))
}

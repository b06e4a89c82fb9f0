package trie

// Trie is a prefix-searchable index over a fixed collection of strings,
// built once in bulk. A built trie is immutable and safe for concurrent
// readers.
type Trie struct {
	root *Node
}

// New builds a trie over strs by inserting every string in input order.
//
// If the same byte sequence occurs at two positions, the later position wins:
// only the last duplicate's index is reachable through SearchPrefix.
func New(strs []string) *Trie {
	t := &Trie{root: &Node{}}
	for i := range strs {
		t.insert(strs, i, 0)
	}
	return t
}

// Root returns the root node. It is non-nil for any trie produced by a
// constructor, even over an empty input collection.
func (t *Trie) Root() *Node {
	return t.root
}

// insert walks strs[stringIndex][skip:] from the root, creating nodes as
// needed, and marks the final node with stringIndex.
func (t *Trie) insert(strs []string, stringIndex int, skip int) {
	s := strs[stringIndex]
	current := t.root
	for i := skip; i < len(s); i++ {
		current = current.GetOrCreateChild(s[i])
	}
	current.SetStringIndex(stringIndex)
}

// SearchPrefix returns the positions of every input string beginning with
// prefix. The result is unordered; callers needing a stable order must sort
// it. An absent prefix yields an empty result, not an error. The empty
// prefix matches every input string.
//
// The descent costs O(len(prefix)); collection costs O(matching subtree).
// For unselective prefixes, the empty prefix above all, that subtree is the
// whole trie and a linear scan is just as fast.
func (t *Trie) SearchPrefix(prefix string) []int {
	descendant := t.root.DescendantForPrefix(prefix)
	if descendant == nil {
		return nil
	}
	return descendant.AppendStringIndices(nil)
}

// releaseRoot transfers ownership of the root to the caller, leaving the
// trie empty. Coarsening uses this to re-parent bucket tries without copying
// a node. The donor must not be used afterwards.
func (t *Trie) releaseRoot() *Node {
	root := t.root
	t.root = nil
	return root
}

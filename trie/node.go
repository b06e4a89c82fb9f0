package trie

// childEntry associates one key byte with an exclusively owned child node.
type childEntry struct {
	key   byte
	child *Node
}

// Node is a single trie vertex. Each outgoing edge is labelled with one byte;
// a node optionally records the position of the input string whose byte
// sequence ends exactly here.
type Node struct {
	children    []childEntry
	stringIndex int
	hasString   bool
}

// StringIndex returns the position of the string terminating at this node,
// if any.
func (n *Node) StringIndex() (int, bool) {
	return n.stringIndex, n.hasString
}

// SetStringIndex marks stringIndex as terminating at this node. At most one
// string terminates at a node; a second call overwrites the first.
func (n *Node) SetStringIndex(stringIndex int) {
	n.stringIndex = stringIndex
	n.hasString = true
}

// Child returns the child reached over key, or nil if key has no child.
func (n *Node) Child(key byte) *Node {
	for i := range n.children {
		if n.children[i].key == key {
			return n.children[i].child
		}
	}
	return nil
}

// GetOrCreateChild returns the child for key, creating and attaching an empty
// node first if key has no child yet.
func (n *Node) GetOrCreateChild(key byte) *Node {
	if child := n.Child(key); child != nil {
		return child
	}
	child := &Node{}
	n.children = append(n.children, childEntry{key: key, child: child})
	return child
}

// SetChild attaches child under key, taking ownership. An existing child
// under key is replaced and its subtree dropped; subtrees are not merged.
func (n *Node) SetChild(key byte, child *Node) {
	for i := range n.children {
		if n.children[i].key == key {
			n.children[i].child = child
			return
		}
	}
	n.children = append(n.children, childEntry{key: key, child: child})
}

// DescendantForPrefix walks from n following each byte of prefix in order and
// returns the node reached, or nil the first time a required child is
// missing. The walk does not continue past a missing byte.
func (n *Node) DescendantForPrefix(prefix string) *Node {
	current := n
	for i := 0; i < len(prefix); i++ {
		current = current.Child(prefix[i])
		if current == nil {
			return nil
		}
	}
	return current
}

// AppendStringIndices appends the positions of all strings terminating in
// this node's subtree to indices and returns the extended slice. The
// traversal is depth first over children in attachment order, so repeated
// calls on an unmodified subtree produce identical output. The output order
// has no relation to the input collection's order.
func (n *Node) AppendStringIndices(indices []int) []int {
	if n.hasString {
		indices = append(indices, n.stringIndex)
	}
	for i := range n.children {
		indices = n.children[i].child.AppendStringIndices(indices)
	}
	return indices
}

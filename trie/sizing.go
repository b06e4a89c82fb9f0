package trie

import "unsafe"

// Footprints used by SizeInMemory. The accounting covers node structs and
// the backing arrays of their child lists; allocator overhead is not
// modelled.
const (
	nodeBytes       = int(unsafe.Sizeof(Node{}))
	childEntryBytes = int(unsafe.Sizeof(childEntry{}))
)

// NumNodes returns the number of nodes in this node's subtree, n included.
func (n *Node) NumNodes() int {
	count := 1
	for i := range n.children {
		count += n.children[i].child.NumNodes()
	}
	return count
}

// SizeInMemory returns the approximate heap footprint in bytes of this
// node's subtree, n included. Purely observational; intended for external
// diagnostics and reporting.
func (n *Node) SizeInMemory() int {
	size := nodeBytes + len(n.children)*childEntryBytes
	for i := range n.children {
		size += n.children[i].child.SizeInMemory()
	}
	return size
}

// NumNodes returns the number of nodes in the trie, root included.
func (t *Trie) NumNodes() int {
	return t.root.NumNodes()
}

// SizeInMemory returns the approximate heap footprint of the trie in bytes.
func (t *Trie) SizeInMemory() int {
	return int(unsafe.Sizeof(*t)) + t.root.SizeInMemory()
}

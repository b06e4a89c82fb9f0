package trie

import (
	"fmt"
	"strings"
)

// debug utilities

// TreeString renders the subtree rooted at n with one child edge per line,
// indented by depth. Intended for debugging small tries.
func TreeString(n *Node) string {
	var sb strings.Builder
	writeTree(&sb, n, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if index, ok := n.StringIndex(); ok {
		fmt.Fprintf(sb, "%s* string %d\n", indent, index)
	}
	for i := range n.children {
		entry := n.children[i]
		fmt.Fprintf(sb, "%s%q (%d)\n", indent, entry.key, entry.key)
		writeTree(sb, entry.child, depth+1)
	}
}

package trie

/*

# Prefix-searchable string index

This package indexes a fixed collection of strings so that, for any query
prefix, the positions of all strings beginning with that prefix can be found
without scanning the whole collection. The collection is supplied once, in
bulk; a built trie is immutable and safe for concurrent readers.

It follows the same "small, composable functions" style as the rest of this
module's lineage: explicit structures, explicit preconditions, and a burden of
knowledge on the caller for the low-level construction primitives.

## Core structure

Each Node maps a single byte to an exclusively owned child. Children are held
in a small association list rather than a 256-slot array: the alphabet seen at
any one node is typically tiny, so an O(k) child scan buys memory proportional
to the branches that actually occur. A node optionally records the position of
the input string whose byte sequence ends exactly there; the marker is an
explicit (index, ok) pair, so no index value is reserved as a sentinel.

Matching is over raw bytes. Multi-byte encodings are not interpreted; a prefix
query splits code points exactly as a byte-wise comparison would.

## Invariants

 1. at most one string terminates at any node; if the same byte sequence
    occurs at two input positions, the later position wins
 2. every node is owned by exactly one parent (or by the Trie, for the root);
    the tree has no cycles and no shared subtrees
 3. the root is non-nil even for an empty input collection
 4. a trie is fully determined by the set of (byte sequence, position) pairs
    it was built from; among distinct strings, input order is irrelevant

## Parallel bulk construction

NewParallel builds the same tree as New in four phases:

 1. bucket sort: string positions are grouped by their first L bytes, emitted
    in ascending prefix order; strings shorter than L bytes are set aside
 2. bucket build: each bucket becomes a standalone trie over its strings with
    the shared L-byte prefix stripped, fanned out over a fixed worker pool;
    no two workers touch the same memory, so the phase needs no locking
 3. coarsening: L sequential rounds each drop the final prefix byte, group
    the still-sorted (prefix, trie) list into runs sharing the shorter
    prefix, and reattach each run member's root under the dropped byte in a
    fresh parent; roots are transferred, never copied
 4. short strings are inserted sequentially into the merged tree

L = 0 or a single worker degrades to a plain sequential build. Sparse buckets
only cost speed, never correctness.

*/

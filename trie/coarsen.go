package trie

import "errors"

var (
	ErrBucketCountMismatch    = errors.New("trie: bucket prefix and trie counts differ")
	ErrPrefixLengthMismatch   = errors.New("trie: bucket prefixes differ in length")
	ErrUnsortedBucketPrefixes = errors.New("trie: bucket prefixes not strictly ascending")
)

// CoarsenBucketTries merges the bucket tries into a single trie by shortening
// the grouping prefix one byte per round. Each round groups the sorted
// (prefix, trie) list into maximal runs sharing the prefix minus its final
// byte, then creates one parent per run whose root adopts each run member's
// root under that dropped byte. A single linear scan per round finds the
// runs; this is only sound because the list is sorted, which the rounds
// preserve. Roots are transferred, never copied.
//
// Preconditions, validated up front: len(bucketPrefixes) == len(bucketTries),
// all prefixes share one length, and the prefixes are strictly ascending.
// The bucket tries are consumed; they must not be used afterwards.
//
// The result is the trie that sequential insertion would have produced for
// the bucketed strings. Empty input yields a valid empty trie.
func CoarsenBucketTries(bucketPrefixes []string, bucketTries []*Trie) (*Trie, error) {
	if len(bucketPrefixes) != len(bucketTries) {
		return nil, ErrBucketCountMismatch
	}
	if len(bucketTries) == 0 {
		return &Trie{root: &Node{}}, nil
	}

	prefixLength := len(bucketPrefixes[0])
	for _, prefix := range bucketPrefixes[1:] {
		if len(prefix) != prefixLength {
			return nil, ErrPrefixLengthMismatch
		}
	}
	for i := 1; i < len(bucketPrefixes); i++ {
		if bucketPrefixes[i-1] >= bucketPrefixes[i] {
			return nil, ErrUnsortedBucketPrefixes
		}
	}

	prefixes := bucketPrefixes
	tries := bucketTries
	for round := 0; round < prefixLength; round++ {
		var (
			nextPrefixes []string
			nextTries    []*Trie
		)
		for begin := 0; begin < len(prefixes); {
			shorter := prefixes[begin][:len(prefixes[begin])-1]
			end := begin + 1
			for end < len(prefixes) && prefixes[end][:len(shorter)] == shorter {
				end++
			}

			parent := &Trie{root: &Node{}}
			for i := begin; i < end; i++ {
				key := prefixes[i][len(shorter)]
				parent.root.SetChild(key, tries[i].releaseRoot())
			}
			nextPrefixes = append(nextPrefixes, shorter)
			nextTries = append(nextTries, parent)
			begin = end
		}
		// Run grouping keeps the shortened prefixes distinct and ascending,
		// so the next round's precondition holds by construction.
		prefixes = nextPrefixes
		tries = nextTries
	}

	if len(tries) != 1 {
		panic("trie: coarsening did not converge to a single trie")
	}
	return tries[0], nil
}

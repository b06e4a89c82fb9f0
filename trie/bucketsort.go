package trie

import "sort"

// BucketSortStrings partitions the positions of strs into buckets keyed by
// each string's first prefixLength bytes. It returns the distinct bucket
// prefixes in ascending byte order, the position list for each prefix
// (parallel to bucketPrefixes, positions in input order), and the positions
// of strings strictly shorter than prefixLength, which cannot supply a full
// key and are excluded from bucketing.
//
// Interpreting a prefix as a base-256 big-endian integer, ascending numeric
// order and ascending byte order coincide. CoarsenBucketTries requires this
// ordering.
//
// prefixLength 0 yields at most one bucket, keyed by the empty prefix and
// holding every position, and no short strings.
func BucketSortStrings(strs []string, prefixLength int) (bucketPrefixes []string, buckets [][]int, shortStringIndices []int) {
	byPrefix := make(map[string][]int)
	for i, s := range strs {
		if len(s) < prefixLength {
			shortStringIndices = append(shortStringIndices, i)
			continue
		}
		prefix := s[:prefixLength]
		byPrefix[prefix] = append(byPrefix[prefix], i)
	}

	bucketPrefixes = make([]string, 0, len(byPrefix))
	for prefix := range byPrefix {
		bucketPrefixes = append(bucketPrefixes, prefix)
	}
	sort.Strings(bucketPrefixes)

	buckets = make([][]int, len(bucketPrefixes))
	for i, prefix := range bucketPrefixes {
		buckets[i] = byPrefix[prefix]
	}
	return bucketPrefixes, buckets, shortStringIndices
}

package trie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/valentjn/prefix-searcher/trietesting"
)

// corpusWithEdgeCases returns a seeded random corpus extended with the edge
// cases the parallel build must handle: strings shorter than any partition
// prefix, the empty string, and byte-identical duplicates.
func corpusWithEdgeCases(t *testing.T) []string {
	t.Helper()
	strs := trietesting.GenerateStrings(trietesting.StringsConfig{
		Seed:          42,
		Count:         1500,
		MinimumLength: 3,
		MaximumLength: 10,
		Alphabet:      "abcd",
	})
	strs = append(strs, "", "a", "ab", "abc", strs[0], strs[1])
	return strs
}

func requireSameSearchResults(t *testing.T, strs []string, expected, actual *Trie) {
	t.Helper()

	prefixes := []string{"", "a", "b", "ab", "dc", "abc", "aaaa", "zz"}
	for _, s := range strs[:200] {
		for i := 0; i <= len(s); i++ {
			prefixes = append(prefixes, s[:i])
		}
	}

	for _, prefix := range prefixes {
		require.Equal(t, searchSorted(expected, prefix), searchSorted(actual, prefix),
			"prefix %q", prefix)
	}
}

func TestParallelBuildMatchesSequentialBuild(t *testing.T) {
	defer goleak.VerifyNone(t)

	strs := corpusWithEdgeCases(t)
	sequential := New(strs)

	for _, prefixLength := range []int{0, 1, 2, 3} {
		for _, workers := range []int{1, 2, 8} {
			t.Run(fmt.Sprintf("prefixLength=%d/workers=%d", prefixLength, workers), func(t *testing.T) {
				parallel := NewParallelWorkers(strs, prefixLength, workers)

				// Same structure, not merely the same answers.
				require.Equal(t, sequential.NumNodes(), parallel.NumNodes())
				requireSameSearchResults(t, strs, sequential, parallel)
			})
		}
	}
}

func TestNewParallelDefaultWorkerCount(t *testing.T) {
	defer goleak.VerifyNone(t)

	strs := []string{"wetter", "hallo", "hello", "welt", "world", "haus"}
	parallel := NewParallel(strs, DefaultParallelPrefixLength)

	require.ElementsMatch(t, []int{1, 5}, parallel.SearchPrefix("ha"))
	require.ElementsMatch(t, []int{0, 3}, parallel.SearchPrefix("we"))
	require.Empty(t, parallel.SearchPrefix("x"))
}

func TestParallelBuildEmptyInputCollection(t *testing.T) {
	parallel := NewParallelWorkers(nil, 2, 4)
	require.NotNil(t, parallel.Root())
	require.Empty(t, parallel.SearchPrefix(""))
}

func TestParallelBuildAllStringsShorterThanPrefix(t *testing.T) {
	// Every string bypasses bucketing; the build degrades to sequential
	// insertion into a fresh empty trie.
	strs := []string{"a", "b", ""}
	parallel := NewParallelWorkers(strs, 5, 4)

	require.Equal(t, []int{0, 1, 2}, searchSorted(parallel, ""))
	require.Equal(t, []int{0}, searchSorted(parallel, "a"))
}

func TestParallelBuildPrefixLengthExceedsWorkerUsefulness(t *testing.T) {
	// Far more workers than buckets: idle workers must not affect the result.
	strs := []string{"aa", "ab", "ba"}
	parallel := NewParallelWorkers(strs, 1, 64)
	sequential := New(strs)

	require.Equal(t, sequential.NumNodes(), parallel.NumNodes())
	for _, prefix := range []string{"", "a", "aa", "ab", "b", "c"} {
		require.Equal(t, searchSorted(sequential, prefix), searchSorted(parallel, prefix))
	}
}

func TestBuildBucketTriesStripsSharedPrefix(t *testing.T) {
	strs := []string{"abc", "abd", "xyz"}
	bucketPrefixes, buckets, _ := BucketSortStrings(strs, 2)
	require.Equal(t, []string{"ab", "xy"}, bucketPrefixes)

	bucketTries := BuildBucketTries(strs, 2, buckets, 2)
	require.Len(t, bucketTries, 2)

	// Insertion started at offset 2: only the suffixes are present.
	require.Equal(t, []int{0}, searchSorted(bucketTries[0], "c"))
	require.Equal(t, []int{1}, searchSorted(bucketTries[0], "d"))
	require.Equal(t, []int{2}, searchSorted(bucketTries[1], "z"))
	require.Empty(t, bucketTries[0].SearchPrefix("a"))
}

func TestParallelBuildDuplicateStringsKeepLastIndex(t *testing.T) {
	strs := []string{"dup", "other", "dup"}
	for _, workers := range []int{1, 4} {
		parallel := NewParallelWorkers(strs, 2, workers)
		require.Equal(t, []int{2}, searchSorted(parallel, "dup"))
		require.Equal(t, []int{1, 2}, searchSorted(parallel, ""))
	}
}

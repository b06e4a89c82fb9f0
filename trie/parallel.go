package trie

import (
	"runtime"
	"sync"
)

// DefaultParallelPrefixLength is the partition prefix length used when
// callers have no better estimate. Two bytes allows up to 65536 buckets,
// comfortably more than any realistic worker count, while keeping the
// coarsening phase to two rounds.
const DefaultParallelPrefixLength = 2

// NewParallel builds the same trie as New, distributing the bucket builds
// over runtime.GOMAXPROCS(0) workers. Strings are partitioned by their first
// prefixLength bytes; see the package documentation for the four phases.
func NewParallel(strs []string, prefixLength int) *Trie {
	return NewParallelWorkers(strs, prefixLength, runtime.GOMAXPROCS(0))
}

// NewParallelWorkers is NewParallel with an explicit worker count.
// prefixLength 0 or a single worker degrades to a plain sequential build.
func NewParallelWorkers(strs []string, prefixLength int, workers int) *Trie {
	bucketPrefixes, buckets, shortStringIndices := BucketSortStrings(strs, prefixLength)
	bucketTries := BuildBucketTries(strs, prefixLength, buckets, workers)

	merged, err := CoarsenBucketTries(bucketPrefixes, bucketTries)
	if err != nil {
		// BucketSortStrings emits sorted prefixes of uniform length; a
		// failure here is a bug, not a recoverable condition.
		panic(err)
	}

	// Strings shorter than the partition prefix cannot be bucketed; they go
	// in through ordinary sequential insertion.
	for _, stringIndex := range shortStringIndices {
		merged.insert(strs, stringIndex, 0)
	}
	return merged
}

// BuildBucketTries builds one standalone trie per bucket, each holding its
// bucket's strings with the shared prefixLength-byte prefix stripped, so
// that insertion starts at byte offset prefixLength. Buckets are spread over
// workers goroutines; every bucket is built entirely within one goroutine
// and written to its own result slot, so the phase needs no locking. The
// call returns only after all workers have finished.
func BuildBucketTries(strs []string, prefixLength int, buckets [][]int, workers int) []*Trie {
	bucketTries := make([]*Trie, len(buckets))

	build := func(bucketIndex int) {
		t := &Trie{root: &Node{}}
		for _, stringIndex := range buckets[bucketIndex] {
			t.insert(strs, stringIndex, prefixLength)
		}
		bucketTries[bucketIndex] = t
	}

	if workers <= 1 || len(buckets) <= 1 {
		for i := range buckets {
			build(i)
		}
		return bucketTries
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bucketIndex := range jobs {
				build(bucketIndex)
			}
		}()
	}
	for i := range buckets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return bucketTries
}

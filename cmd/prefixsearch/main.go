// Command prefixsearch demonstrates and benchmarks the prefix-searchable
// trie: it runs a small fixed example, then builds the index over a large
// seeded random corpus both sequentially and in parallel, and times prefix
// queries against a naive linear scan while cross-checking their results.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/valentjn/prefix-searcher/trie"
	"github.com/valentjn/prefix-searcher/trietesting"
)

func main() {
	count := flag.Int("count", 2000000, "number of random strings to index")
	minLength := flag.Int("min-length", 3, "minimum random string length")
	maxLength := flag.Int("max-length", 30, "maximum random string length")
	seed := flag.Int64("seed", 42, "random corpus seed")
	prefixLength := flag.Int("prefix-length", trie.DefaultParallelPrefixLength,
		"partition prefix length for the parallel build")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "worker count for the parallel build")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	simpleExample(log)

	log.Info().Int("count", *count).Msg("generating random strings")
	start := time.Now()
	strs := trietesting.GenerateStrings(trietesting.StringsConfig{
		Seed:          *seed,
		Count:         *count,
		MinimumLength: *minLength,
		MaximumLength: *maxLength,
	})
	log.Info().Dur("elapsed", time.Since(start)).Msg("generated")

	start = time.Now()
	sequential := trie.New(strs)
	log.Info().Dur("elapsed", time.Since(start)).Msg("built sequentially")

	start = time.Now()
	parallel := trie.NewParallelWorkers(strs, *prefixLength, *workers)
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("workers", *workers).
		Int("prefix_length", *prefixLength).
		Msg("built in parallel")

	log.Info().
		Int("nodes", parallel.NumNodes()).
		Str("memory", fmt.Sprintf("%.1f MiB", float64(parallel.SizeInMemory())/(1<<20))).
		Msg("trie statistics")

	const fullPrefix = "abcde"
	for i := 1; i <= len(fullPrefix); i++ {
		searchAndCheck(log, strs, sequential, "sequential", fullPrefix[:i])
		searchAndCheck(log, strs, parallel, "parallel", fullPrefix[:i])
	}
}

func simpleExample(log zerolog.Logger) {
	strs := []string{"wetter", "hallo", "hello", "welt", "world", "haus"}
	t := trie.New(strs)
	for _, prefix := range []string{"ha", "we", "x"} {
		var matches []string
		for _, i := range t.SearchPrefix(prefix) {
			matches = append(matches, strs[i])
		}
		sort.Strings(matches)
		log.Info().Str("prefix", prefix).Strs("matches", matches).Msg("simple example")
	}
}

func searchAndCheck(log zerolog.Logger, strs []string, t *trie.Trie, build, prefix string) {
	start := time.Now()
	indices := t.SearchPrefix(prefix)
	trieElapsed := time.Since(start)

	start = time.Now()
	expected := trietesting.NaiveSearchPrefix(strs, prefix)
	naiveElapsed := time.Since(start)

	sort.Ints(indices)
	if !slices.Equal(indices, expected) {
		log.Fatal().Str("build", build).Str("prefix", prefix).
			Msg("trie matches do not equal naive scan matches")
	}
	log.Info().
		Str("build", build).
		Str("prefix", prefix).
		Int("matches", len(indices)).
		Dur("trie", trieElapsed).
		Dur("naive", naiveElapsed).
		Msg("searched")
}

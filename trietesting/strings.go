// Package trietesting provides deterministic corpus generation and a
// brute-force search oracle, shared by the trie tests and the prefixsearch
// demo binary.
package trietesting

import (
	"math/rand"
	"strings"
)

// DefaultAlphabet is the character set used when StringsConfig.Alphabet is
// empty: digits and ASCII letters.
const DefaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// StringsConfig controls GenerateStrings. It is normal to fix Seed so the
// generated corpus is the same from run to run.
type StringsConfig struct {
	Seed          int64
	Count         int
	MinimumLength int
	MaximumLength int
	Alphabet      string // defaults to DefaultAlphabet
}

// GenerateStrings returns Count distinct random strings with lengths drawn
// uniformly from [MinimumLength, MaximumLength]. The alphabet and length
// range must admit at least Count distinct strings, or the call does not
// terminate.
func GenerateStrings(cfg StringsConfig) []string {
	alphabet := cfg.Alphabet
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	seen := make(map[string]struct{}, cfg.Count)
	strs := make([]string, 0, cfg.Count)
	for len(strs) < cfg.Count {
		length := cfg.MinimumLength
		if cfg.MaximumLength > cfg.MinimumLength {
			length += rng.Intn(cfg.MaximumLength - cfg.MinimumLength + 1)
		}
		b := make([]byte, length)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(b)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		strs = append(strs, s)
	}
	return strs
}

// NaiveSearchPrefix scans strs linearly and returns, in ascending order,
// every position whose string begins with prefix. It is the oracle the trie
// implementations are verified against.
func NaiveSearchPrefix(strs []string, prefix string) []int {
	var indices []int
	for i, s := range strs {
		if strings.HasPrefix(s, prefix) {
			indices = append(indices, i)
		}
	}
	return indices
}

package wildmatch

import (
	"github.com/coregx/wildmatch/automaton"
	"github.com/coregx/wildmatch/simd"
)

// Matcher matches one wildcard pattern against byte streams.
//
// The pattern is fixed at compile time; the scan state (automaton cursor plus
// the counter window) is reusable across streams via Reset. Memory is bounded
// by the pattern: the automaton holds O(total sub-word length) states and the
// window holds len(pattern)+1 counters, independent of how much text is
// scanned.
//
// Window invariant: the counter at offset k equals the number of sub-words
// already confirmed for the pattern alignment whose right edge lies k
// characters ahead of the current stream position. When the counter at offset
// 0 reaches the number of sub-words, every sub-word has matched at one
// consistent alignment and a full match ends at the current character.
type Matcher struct {
	pattern  string
	wildcard byte
	config   Config
	strategy strategy

	// numWords is the sub-word count, wildcard count + 1. Empty sub-words
	// (adjacent, leading, or trailing wildcards) are real sub-words: they
	// match trivially and still contribute to the counter threshold.
	numWords int

	// longestWord backs the FindAll prefilter probe.
	longestWord string

	auto  *automaton.Automaton
	state automaton.NodeRef

	// counters is the sliding window, a ring of len(pattern)+1 buckets with
	// head as the bucket for offset 0.
	counters []int
	head     int
}

func newMatcher(pattern string, wildcard byte, config Config) *Matcher {
	words := Split(pattern, func(c byte) bool { return c == wildcard })

	m := &Matcher{
		pattern:  pattern,
		wildcard: wildcard,
		config:   config,
		strategy: selectStrategy(words, config),
		numWords: len(words),
		counters: make([]int, len(pattern)+1),
	}

	b := automaton.NewBuilder()
	id := 0
	for _, word := range words {
		// The word's id is its end offset within the pattern: the length of
		// everything before it plus itself, counting wildcard separators.
		// Scan relies on this when mapping an id to a window bucket.
		id += len(word)
		b.Add(word, id)
		id++

		if len(word) > len(m.longestWord) {
			m.longestWord = word
		}
	}
	m.auto = b.Build()

	m.Reset()
	return m
}

// Pattern returns the pattern the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Wildcard returns the wildcard byte the matcher was compiled with.
func (m *Matcher) Wildcard() byte {
	return m.wildcard
}

// Reset reinitializes the scan state without rebuilding the automaton,
// abandoning any stream scanned so far. A fresh stream scanned afterwards
// yields exactly the matches of a fresh Matcher.
func (m *Matcher) Reset() {
	m.state = m.auto.Root()
	for i := range m.counters {
		m.counters[i] = 0
	}
	m.head = 0

	// Settle pass: credit sub-words that match before any character arrives.
	// Only empty sub-words can (they terminate at the root); without this a
	// pattern starting with a wildcard would never see its leading empty
	// sub-word counted, and matches near the stream start would be lost.
	m.updateWordOccurrences()
	m.shiftCounters()
}

// Scan consumes one character of the stream and reports whether a full
// pattern match ends at it. The match's starting offset is the index of this
// character plus 1 minus len(pattern).
func (m *Matcher) Scan(c byte) bool {
	m.state = m.state.Next(c)
	m.updateWordOccurrences()
	matched := m.counters[m.head] == m.numWords
	m.shiftCounters()
	return matched
}

// updateWordOccurrences credits every sub-word occurrence ending at the
// current position to its alignment bucket. A sub-word with end offset id
// belongs to the alignment whose right edge is len(pattern)-id characters
// ahead.
func (m *Matcher) updateWordOccurrences() {
	m.state.GenerateMatches(func(id int) {
		m.counters[(m.head+len(m.pattern)-id)%len(m.counters)]++
	})
}

// shiftCounters slides the window one position: the offset-0 bucket is
// recycled as the new farthest bucket, zeroed.
func (m *Matcher) shiftCounters() {
	m.counters[m.head] = 0
	m.head++
	if m.head == len(m.counters) {
		m.head = 0
	}
}

// FindAll reports every 0-indexed offset at which the pattern matches text,
// in increasing order. It resets the matcher first and leaves it reset-worthy
// afterwards, so interleaving FindAll with a hand-driven Scan stream requires
// a Reset in between.
//
// Degenerate inputs are defined, not errors: an empty pattern matches the
// empty string at every offset 0..len(text) inclusive, and a pattern longer
// than the text has no matches.
func (m *Matcher) FindAll(text string) []int {
	if len(m.pattern) == 0 {
		out := make([]int, len(text)+1)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if len(m.pattern) > len(text) {
		return nil
	}

	if m.strategy == strategyLiteral {
		return findLiteral(text, m.pattern, nil)
	}

	// Quick reject: every match must contain every sub-word, so if the
	// longest one is absent the scan cannot fire. Worth a probe only when the
	// sub-word is long enough to be selective.
	if m.config.EnablePrefilter && len(m.longestWord) >= m.config.MinPrefilterLen {
		if simd.Memmem([]byte(text), []byte(m.longestWord)) == -1 {
			return nil
		}
	}

	m.Reset()
	var out []int
	for i := 0; i < len(text); i++ {
		if m.Scan(text[i]) {
			out = append(out, i+1-len(m.pattern))
		}
	}
	return out
}

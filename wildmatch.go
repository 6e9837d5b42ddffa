// Package wildmatch provides streaming fuzzy substring matching: it reports
// every offset in a text where a pattern containing single-character
// wildcards matches under wildcard substitution.
//
// The engine splits the pattern into wildcard-free sub-words, builds an
// Aho-Corasick automaton over them, and streams the text through the
// automaton once, left to right. A sliding window of counters (one per
// alignment offset inside the pattern) converts "which sub-words matched
// where" into "does the whole pattern match here", with O(1) amortized work
// per character and O(len(pattern)) memory regardless of text length.
//
// Basic usage:
//
//	offsets := wildmatch.FindAll("a?c", "abcaac", '?')
//	// offsets == []int{0, 3}
//
// Streaming usage:
//
//	m := wildmatch.Compile("a?c", '?')
//	for i := 0; i < len(text); i++ {
//		if m.Scan(text[i]) {
//			// a match ends at text[i], starting at i+1-len("a?c")
//		}
//	}
//
// Construction and scanning are total: every pattern, wildcard byte, and text
// is valid input, so the API has no error returns. Degenerate inputs have
// defined behavior (see Matcher.FindAll).
package wildmatch

import "github.com/coregx/wildmatch/simd"

// strategy selects how FindAll executes. The streaming Scan API always uses
// the automaton; the strategy only affects whole-text searches.
type strategy int

const (
	// strategyScan streams the text through the automaton with the sliding
	// counter window. Works for every pattern.
	strategyScan strategy = iota

	// strategyLiteral searches the pattern as a plain substring with the SWAR
	// primitives. Selected when the pattern contains no wildcard at all, where
	// the counter machinery adds nothing over direct literal search.
	strategyLiteral
)

// Config controls matcher behavior.
//
// Every configuration produces identical match results; the knobs only trade
// work between strategies, and exist mainly so tests can force the general
// scan path onto inputs the fast paths would otherwise take.
type Config struct {
	// EnableLiteralFastPath allows wildcard-free patterns to be searched as
	// plain substrings instead of through the automaton scan.
	// Default: true
	EnableLiteralFastPath bool

	// EnablePrefilter allows FindAll to probe the text for the pattern's
	// longest sub-word before scanning. If the sub-word is absent, no
	// full-pattern match is possible and the scan is skipped.
	// Default: true
	EnablePrefilter bool

	// MinPrefilterLen is the minimum longest-sub-word length for the prefilter
	// probe to run. Probing for very short sub-words rarely rejects anything
	// and just adds a pass over the text.
	// Default: 3
	MinPrefilterLen int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		EnableLiteralFastPath: true,
		EnablePrefilter:       true,
		MinPrefilterLen:       3,
	}
}

// Compile builds a Matcher for pattern, where wildcard is the byte that
// matches any single text byte. Compilation never fails: any pattern,
// including the empty string and strings consisting only of wildcards, is
// valid.
//
// The returned Matcher is ready to Scan a stream. It is not safe for
// concurrent use; compile one Matcher per goroutine (the cost is
// O(len(pattern))).
func Compile(pattern string, wildcard byte) *Matcher {
	return CompileWithConfig(pattern, wildcard, DefaultConfig())
}

// CompileWithConfig is Compile with explicit configuration.
func CompileWithConfig(pattern string, wildcard byte, config Config) *Matcher {
	return newMatcher(pattern, wildcard, config)
}

// FindAll reports every 0-indexed offset at which pattern matches text under
// wildcard substitution, in increasing order. It is shorthand for compiling
// and running a Matcher; callers matching one pattern against several texts
// should compile once and reuse the Matcher.
func FindAll(pattern, text string, wildcard byte) []int {
	return Compile(pattern, wildcard).FindAll(text)
}

// selectStrategy picks the FindAll execution strategy from the split pattern.
// A single sub-word means the pattern had no wildcards.
func selectStrategy(words []string, config Config) strategy {
	if config.EnableLiteralFastPath && len(words) == 1 {
		return strategyLiteral
	}
	return strategyScan
}

// findLiteral is the wildcard-free whole-text search: repeated Memmem with
// one-byte steps so overlapping occurrences are all reported.
func findLiteral(text, literal string, out []int) []int {
	hay := []byte(text)
	needle := []byte(literal)

	at := 0
	for at+len(needle) <= len(hay) {
		pos := simd.Memmem(hay[at:], needle)
		if pos == -1 {
			break
		}
		out = append(out, at+pos)
		at += pos + 1
	}
	return out
}

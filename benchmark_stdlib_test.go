package wildmatch

import (
	"regexp"
	"strings"
	"testing"
)

// regexForPattern translates a wildcard pattern into an equivalent regexp:
// sub-words are quoted, wildcards become '.'. Stdlib regexp reports
// non-overlapping matches only, so these comparisons measure throughput, not
// equivalence (reference_test.go covers correctness).
func regexForPattern(pattern string, wildcard byte) *regexp.Regexp {
	words := Split(pattern, func(c byte) bool { return c == wildcard })
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile("(?s)" + strings.Join(quoted, "."))
}

func benchText() string {
	var sb strings.Builder
	for i := 0; i < 256; i++ {
		sb.WriteString("the quick brown fox jumps over the lazy dog and the cat naps ")
	}
	return sb.String()
}

func BenchmarkFindAllWildcard(b *testing.B) {
	const pattern = "qu?ck"
	text := benchText()

	b.Run("wildmatch", func(b *testing.B) {
		m := Compile(pattern, '?')
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := m.FindAll(text); len(got) == 0 {
				b.Fatal("expected matches")
			}
		}
	})

	b.Run("stdlib_regexp", func(b *testing.B) {
		re := regexForPattern(pattern, '?')
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := re.FindAllStringIndex(text, -1); len(got) == 0 {
				b.Fatal("expected matches")
			}
		}
	})
}

func BenchmarkFindAllLiteral(b *testing.B) {
	const pattern = "lazy dog"
	text := benchText()

	b.Run("literal_fast_path", func(b *testing.B) {
		m := Compile(pattern, '?')
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := m.FindAll(text); len(got) == 0 {
				b.Fatal("expected matches")
			}
		}
	})

	b.Run("forced_scan", func(b *testing.B) {
		m := CompileWithConfig(pattern, '?', Config{})
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := m.FindAll(text); len(got) == 0 {
				b.Fatal("expected matches")
			}
		}
	})

	b.Run("stdlib_regexp", func(b *testing.B) {
		re := regexForPattern(pattern, '?')
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := re.FindAllStringIndex(text, -1); len(got) == 0 {
				b.Fatal("expected matches")
			}
		}
	})
}

// BenchmarkPrefilterReject measures the quick-reject path: a long sub-word
// absent from the text lets FindAll skip the automaton scan entirely.
func BenchmarkPrefilterReject(b *testing.B) {
	const pattern = "?zebra?crossing?"
	text := benchText()

	b.Run("prefilter_on", func(b *testing.B) {
		m := Compile(pattern, '?')
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := m.FindAll(text); got != nil {
				b.Fatal("expected no matches")
			}
		}
	})

	b.Run("prefilter_off", func(b *testing.B) {
		m := CompileWithConfig(pattern, '?', Config{EnableLiteralFastPath: true})
		b.SetBytes(int64(len(text)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if got := m.FindAll(text); got != nil {
				b.Fatal("expected no matches")
			}
		}
	})
}

func BenchmarkScanStreaming(b *testing.B) {
	m := Compile("a?c", '?')
	text := benchText()

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reset()
		for j := 0; j < len(text); j++ {
			m.Scan(text[j])
		}
	}
}

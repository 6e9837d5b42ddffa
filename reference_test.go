package wildmatch

import (
	"math/rand"
	"reflect"
	"testing"
)

// naiveFindAll is the O(|text|*|pattern|) reference: try every offset, check
// every position. The streaming engine must agree with it exactly.
func naiveFindAll(pattern, text string, wildcard byte) []int {
	if len(pattern) == 0 {
		out := make([]int, len(text)+1)
		for i := range out {
			out[i] = i
		}
		return out
	}

	var out []int
	for o := 0; o+len(pattern) <= len(text); o++ {
		ok := true
		for j := 0; j < len(pattern); j++ {
			if pattern[j] != wildcard && text[o+j] != pattern[j] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, o)
		}
	}
	return out
}

// checkOffsets verifies the per-position wildcard property for every reported
// offset: each pattern position is either the wildcard or equal to the text.
func checkOffsets(t *testing.T, pattern, text string, wildcard byte, offsets []int) {
	t.Helper()
	for _, o := range offsets {
		if o < 0 || o+len(pattern) > len(text) {
			t.Errorf("offset %d out of range for pattern %q in text of length %d",
				o, pattern, len(text))
			continue
		}
		for j := 0; j < len(pattern); j++ {
			if pattern[j] != wildcard && text[o+j] != pattern[j] {
				t.Errorf("offset %d: pattern %q position %d does not match text %q",
					o, pattern, j, text)
				break
			}
		}
	}
}

func TestAgainstNaiveScan(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
	}{
		{"a?c", "abcaac"},
		{"??", "xy"},
		{"abc", "abcabc"},
		{"?a?a?", "banana bandana"},
		{"aa?aa", "aaaaaaaa"},
		{"?", ""},
		{"", "hello"},
		{"ab", "ab"},
		{"?x?", "axbxcxd"},
	}

	for _, tt := range tests {
		got := FindAll(tt.pattern, tt.text, '?')
		want := naiveFindAll(tt.pattern, tt.text, '?')
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindAll(%q, %q) = %v, naive = %v", tt.pattern, tt.text, got, want)
		}
		checkOffsets(t, tt.pattern, tt.text, '?', got)
	}
}

// TestRandomizedAgainstNaiveScan fuzzes pattern/text pairs over a small
// alphabet (small so collisions, overlaps and wildcard pile-ups actually
// happen) and cross-checks three executions: the default configuration, the
// forced automaton scan, and the naive reference.
func TestRandomizedAgainstNaiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scanOnly := Config{EnableLiteralFastPath: false, EnablePrefilter: false}

	randString := func(n int, alphabet string) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	for iter := 0; iter < 2000; iter++ {
		pattern := randString(rng.Intn(7), "ab?")
		text := randString(rng.Intn(40), "abc")

		want := naiveFindAll(pattern, text, '?')
		got := FindAll(pattern, text, '?')
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("iter %d: FindAll(%q, %q) = %v, naive = %v",
				iter, pattern, text, got, want)
		}

		forced := CompileWithConfig(pattern, '?', scanOnly).FindAll(text)
		if !reflect.DeepEqual(forced, want) {
			t.Fatalf("iter %d: forced scan FindAll(%q, %q) = %v, naive = %v",
				iter, pattern, text, forced, want)
		}
	}
}

// TestRandomizedStreamReuse rescans a second stream through the same matcher
// after a Reset and checks it against a fresh compile of the same pattern.
func TestRandomizedStreamReuse(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	randString := func(n int, alphabet string) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	for iter := 0; iter < 300; iter++ {
		pattern := randString(1+rng.Intn(5), "ab?")
		first := randString(rng.Intn(30), "ab")
		second := randString(rng.Intn(30), "ab")

		m := Compile(pattern, '?')
		m.FindAll(first)

		got := m.FindAll(second)
		want := Compile(pattern, '?').FindAll(second)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("iter %d: reused matcher on %q after %q = %v, fresh = %v",
				iter, second, first, got, want)
		}
	}
}

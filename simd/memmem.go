package simd

import "bytes"

// Needles longer than this fall back to bytes.Index, whose two-way search
// keeps pathological inputs linear. The rare-byte loop below is faster only
// while verification stays cheap.
const maxRareByteNeedle = 32

// Memmem returns the index of the first occurrence of needle in haystack, or
// -1 if needle is not present. Equivalent to bytes.Index.
//
// Short needles use a rare-byte heuristic: pick one needle byte, find its
// occurrences with Memchr, and verify the full needle around each candidate.
// The last byte is used as the probe; in text and code, endings discriminate
// better than beginnings, and the choice costs nothing to compute.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	case len(needle) > maxRareByteNeedle:
		return bytes.Index(haystack, needle)
	}

	probe := needle[len(needle)-1]
	probeOff := len(needle) - 1

	// The probe byte of any full occurrence lies at index >= probeOff and
	// leaves no room past len(haystack).
	at := probeOff
	for at < len(haystack) {
		pos := Memchr(haystack[at:], probe)
		if pos == -1 {
			return -1
		}
		end := at + pos + 1
		start := end - len(needle)
		if bytes.Equal(haystack[start:end], needle) {
			return start
		}
		at = end
	}
	return -1
}

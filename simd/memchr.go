// Package simd provides portable SWAR (SIMD Within A Register) string
// primitives used by the literal fast path and the scan prefilter.
//
// The implementations process 8 bytes per step with uint64 bitwise
// operations, which is 2-5x faster than byte-at-a-time loops on medium and
// large inputs while remaining pure Go and platform-independent.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants for the zero-byte detection formula
// (v - lo8) & ^v & hi8, which yields a non-zero result iff some byte of v is
// zero, with the corresponding high bit set.
const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first occurrence of needle in haystack, or
// -1 if needle is not present.
//
// Equivalent to bytes.IndexByte. The needle is broadcast into every byte of a
// uint64 mask; XOR-ing a haystack word with the mask turns matching bytes into
// zero bytes, which the zero-byte detection formula locates in one step. The
// tail shorter than a word is scanned directly.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		word := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if zeroed := (word - lo8) & ^word & hi8; zeroed != 0 {
			return i + bits.TrailingZeros64(zeroed)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

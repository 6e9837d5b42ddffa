package wildmatch

// Split splits s around every byte for which isDelim returns true.
//
// Unlike strings.FieldsFunc, consecutive delimiters are not grouped: each
// delimiter ends one piece and starts the next, so adjacent delimiters and
// delimiters at either end of s produce empty pieces. The result always has
// exactly one more piece than s has delimiter bytes; Split("", f) is
// []string{""}.
//
// The matcher depends on this exact shape: the pattern's sub-words are the
// pieces between wildcards, empty pieces included, and each piece's slot in
// the result determines its alignment inside the pattern.
//
// Example:
//
//	Split("a?c?", func(c byte) bool { return c == '?' })
//	// ["a", "c", ""]
func Split(s string, isDelim func(c byte) bool) []string {
	pieces := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); i++ {
		if isDelim(s[i]) {
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}
	return append(pieces, s[start:])
}

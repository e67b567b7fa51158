package fastscan

// HasPrefixBounded reports whether b starts with prefix.
//
// b is treated as a bounded buffer: the comparison stops at the end of b or at
// the first 0 byte, and either one before all of prefix matched is a mismatch.
func HasPrefixBounded(b []byte, prefix string) bool {
	i := 0
	for i < len(b) && i < len(prefix) && b[i] != 0 {
		if b[i] != prefix[i] {
			return false
		}
		i++
	}
	return i >= len(prefix)
}

// HasSuffixBounded reports whether suffix matches b at offset
// len(b)-len(suffix) under the rules of HasPrefixBounded, with the bound at
// that offset also being len(b)-len(suffix). A non-empty suffix therefore only
// matches when at least as many bytes precede it in b.
// A suffix longer than b never matches.
func HasSuffixBounded(b []byte, suffix string) bool {
	if len(suffix) > len(b) {
		return false
	}
	start := len(b) - len(suffix)
	end := min(start+start, len(b))
	return HasPrefixBounded(b[start:end], suffix)
}

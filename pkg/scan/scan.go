// Package scan provides small byte-level string scanning primitives.
//
// The package offers four independent capabilities:
//
//   - Split, SplitN and SplitAny break a string into fields
//   - HasPrefix and HasSuffix compare ends of strings
//   - HasPrefixN, HasSuffixN and the View type do the same on bounded buffers
//   - Identifier extracts one identifier or quoted literal from a bounded buffer
//
// Everything works on single bytes; nothing is Unicode-aware.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines
// as long as they do not share an output slice. Split functions append to the
// slice they are given and provide no locking of their own.
//
//	// Safe: distinct outputs
//	go func() { scan.Split(line1, &out1) }()
//	go func() { scan.Split(line2, &out2) }()
//
// # Bounded buffers
//
// The N-suffixed functions and View treat a buffer as a fixed-length region that
// need not be terminated. They never read past the bound and stop early at a 0
// byte, so C-style terminated data inside a larger buffer scans as expected.
// The caller keeps ownership of the buffer: returned strings are copies.
//
// # Example usage:
//
//	var fields []string
//	n := scan.SplitN("set name John Smith", &fields, 3)
//	// n == 3, fields == ["set", "name", "John Smith"]
//
//	buf := []byte("foo_bar(baz)")
//	id := scan.Identifier(buf, len(buf))
//	// id == "foo_bar"
package scan

import (
	"github.com/shapestone/shape-scan/internal/fastscan"
)

// Split appends the space-separated fields of s to *out and returns how many
// it appended. Runs of spaces separate fields; other whitespace is ordinary.
// Empty fields are never produced.
//
// out may be nil, in which case fields are counted but not stored.
func Split(s string, out *[]string) int {
	return SplitN(s, out, -1)
}

// SplitN is Split with a partition limit.
//
// If n is positive, at most n fields are appended: after n-1 fields the rest
// of s, from its next non-space byte, is appended unsplit as the last field.
// If n is 0 or negative there is no limit.
//
// The limit counts only the fields appended by this call:
//
//	out := []string{"x"}
//	scan.SplitN("a b c", &out, 2) // returns 2, out == ["x", "a", "b c"]
func SplitN(s string, out *[]string, n int) int {
	return appendTo(out, func(dst []string) []string {
		return fastscan.AppendFields(dst, s, n)
	})
}

// SplitAny appends every maximal run of s containing none of the bytes in
// delims to *out and returns how many it appended. delims is a set of bytes,
// not a separator string. Consecutive delimiters produce no empty fields.
//
// out may be nil, in which case fields are counted but not stored.
func SplitAny(s, delims string, out *[]string) int {
	return appendTo(out, func(dst []string) []string {
		return fastscan.AppendFieldsAny(dst, s, delims)
	})
}

func appendTo(out *[]string, fn func([]string) []string) int {
	var dst []string
	if out != nil {
		dst = *out
	}
	before := len(dst)
	dst = fn(dst)
	if out != nil {
		*out = dst
	}
	return len(dst) - before
}

// HasPrefix reports whether a begins with b. The comparison is byte-wise and
// case-sensitive; an empty b always matches.
func HasPrefix(a, b string) bool {
	return len(a) >= len(b) && a[:len(b)] == b
}

// HasSuffix reports whether a ends with b. The comparison is byte-wise and
// case-sensitive; an empty b always matches.
func HasSuffix(a, b string) bool {
	return len(a) >= len(b) && a[len(a)-len(b):] == b
}

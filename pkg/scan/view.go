package scan

import (
	"github.com/shapestone/shape-scan/internal/fastscan"
)

// View is a bounded window onto a caller-owned byte buffer.
//
// A View is built from a buffer, an offset and a length, and every accessor
// stays inside that window. Offsets and lengths that fall outside the buffer
// are clamped when the View is built, so no View can address bytes the buffer
// does not have. The zero View is empty.
type View struct {
	data []byte
	off  int
}

// NewView returns a View covering all of buf.
func NewView(buf []byte) View {
	return ViewOf(buf, 0, len(buf))
}

// ViewOf returns a View of n bytes of buf starting at off. off is clamped to
// [0, len(buf)] and n to what remains after it.
func ViewOf(buf []byte, off, n int) View {
	off = clamp(off, 0, len(buf))
	n = clamp(n, 0, len(buf)-off)
	return View{data: buf[off : off+n : off+n], off: off}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.data) }

// Offset returns where the view starts in the buffer it was built from.
// Views made by Sub report offsets in that same buffer.
func (v View) Offset() int { return v.off }

// At returns the byte at index i of the view, or false if i is out of range.
func (v View) At(i int) (byte, bool) {
	if i < 0 || i >= len(v.data) {
		return 0, false
	}
	return v.data[i], true
}

// Sub returns the n bytes of v starting at off, clamped to v.
func (v View) Sub(off, n int) View {
	sub := ViewOf(v.data, off, n)
	sub.off += v.off
	return sub
}

// Advance returns the part of v after its first n bytes.
func (v View) Advance(n int) View {
	return v.Sub(n, len(v.data))
}

// Bytes returns the viewed bytes. The slice shares the caller's buffer and
// its capacity ends at the view, so appending to it never writes past the bound.
func (v View) Bytes() []byte { return v.data }

// String returns a copy of the viewed bytes.
func (v View) String() string { return string(v.data) }

// HasPrefix reports whether the view starts with b. The comparison stops at
// the end of the view or at a 0 byte; stopping before all of b matched is a
// mismatch.
func (v View) HasPrefix(b string) bool {
	return fastscan.HasPrefixBounded(v.data, b)
}

// HasSuffix applies HasPrefix to the view advanced by Len()-len(b) and cut to
// that same length, so a non-empty b matches only when at least len(b) bytes
// precede it. A b longer than the view never matches.
func (v View) HasSuffix(b string) bool {
	return fastscan.HasSuffixBounded(v.data, b)
}

// Identifier returns the identifier or quoted literal at the start of the view.
//
// Outside quotes [0-9A-Za-z_] is accepted and any other byte ends the token
// without being consumed. A ' or " opens a literal in which every byte is
// accepted until the same quote, which is consumed and ends the token; the
// other quote is an ordinary byte there, and there is no escaping. A 0 byte or
// the end of the view ends the token, so an unterminated literal runs to it.
//
// The result may be empty. Its length is where the scan stopped, so
// v.Advance(len(tok)) is the rest of the input.
func (v View) Identifier() string {
	return string(v.data[:fastscan.IdentifierLen(v.data)])
}

// HasPrefixN reports whether the first n bytes of buf start with b.
// See View.HasPrefix.
func HasPrefixN(buf []byte, b string, n int) bool {
	return ViewOf(buf, 0, n).HasPrefix(b)
}

// HasSuffixN reports whether the first n bytes of buf end with b, checking at
// most n-len(b) bytes of b. It returns false when b is longer than n.
// See View.HasSuffix.
func HasSuffixN(buf []byte, b string, n int) bool {
	return ViewOf(buf, 0, n).HasSuffix(b)
}

// Identifier returns the identifier or quoted literal at the start of the
// first n bytes of buf. See View.Identifier.
func Identifier(buf []byte, n int) string {
	return ViewOf(buf, 0, n).Identifier()
}

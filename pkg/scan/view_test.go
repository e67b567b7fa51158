package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewOfClamps(t *testing.T) {
	buf := []byte("abcdef")
	tests := []struct {
		name    string
		off, n  int
		want    string
		wantOff int
	}{
		{name: "whole", off: 0, n: 6, want: "abcdef", wantOff: 0},
		{name: "middle", off: 2, n: 2, want: "cd", wantOff: 2},
		{name: "length past end", off: 4, n: 10, want: "ef", wantOff: 4},
		{name: "offset past end", off: 9, n: 2, want: "", wantOff: 6},
		{name: "negative offset", off: -3, n: 2, want: "ab", wantOff: 0},
		{name: "negative length", off: 1, n: -1, want: "", wantOff: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ViewOf(buf, tt.off, tt.n)
			require.Equal(t, tt.want, v.String())
			require.Equal(t, len(tt.want), v.Len())
			require.Equal(t, tt.wantOff, v.Offset())
		})
	}
}

func TestViewAccess(t *testing.T) {
	v := ViewOf([]byte("xxhelloxx"), 2, 5)

	c, ok := v.At(0)
	require.True(t, ok)
	require.Equal(t, byte('h'), c)

	_, ok = v.At(5)
	require.False(t, ok, "At must not reach past the view")
	_, ok = v.At(-1)
	require.False(t, ok)

	sub := v.Sub(1, 3)
	require.Equal(t, "ell", sub.String())
	require.Equal(t, 3, sub.Offset())

	require.Equal(t, "llo", v.Advance(2).String())
	require.Equal(t, 0, v.Advance(99).Len())

	var zero View
	require.Equal(t, 0, zero.Len())
	require.Equal(t, "", zero.Identifier())
}

func TestViewBytesCannotGrowPastBound(t *testing.T) {
	buf := []byte("abcXYZ")
	b := ViewOf(buf, 0, 3).Bytes()
	require.Equal(t, 3, cap(b))

	_ = append(b, '!')
	require.Equal(t, "abcXYZ", string(buf), "append through a view must not write into the buffer")
}

func TestHasPrefixN(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		b    string
		n    int
		want bool
	}{
		{name: "match", buf: "hello", b: "he", n: 5, want: true},
		{name: "longer than buffer", buf: "he", b: "hello", n: 2, want: false},
		{name: "empty prefix", buf: "hello", b: "", n: 5, want: true},
		{name: "bound too short", buf: "hello", b: "hel", n: 2, want: false},
		{name: "terminator before prefix ends", buf: "h\x00llo", b: "hl", n: 5, want: false},
		{name: "n past buffer is clamped", buf: "hi", b: "hi", n: 100, want: true},
		{name: "negative n", buf: "hi", b: "h", n: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HasPrefixN([]byte(tt.buf), tt.b, tt.n))
		})
	}
}

func TestHasSuffixN(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		b    string
		n    int
		want bool
	}{
		{name: "match", buf: "hello", b: "lo", n: 5, want: true},
		{name: "longer than bound", buf: "lo", b: "hello", n: 2, want: false},
		{name: "bound moves the end", buf: "hello", b: "ll", n: 4, want: true},
		{name: "too little before the window", buf: "hello", b: "el", n: 3, want: false},
		{name: "suffix is the whole bound", buf: "hello", b: "hel", n: 3, want: false},
		{name: "longer than bound inside bigger buffer", buf: "hello", b: "hel", n: 2, want: false},
		{name: "empty suffix", buf: "hello", b: "", n: 5, want: true},
		{name: "empty suffix empty bound", buf: "", b: "", n: 0, want: true},
		{name: "terminator in window", buf: "ab\x00", b: "b\x00", n: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HasSuffixN([]byte(tt.buf), tt.b, tt.n))
		})
	}
}

// TestBoundedPoison checks that the bounded forms ignore a poison region
// placed immediately after the bound.
func TestBoundedPoison(t *testing.T) {
	buf := []byte("abc" + "POISON")

	require.False(t, HasPrefixN(buf, "abcP", 3))
	require.True(t, HasPrefixN(buf, "abc", 3))
	require.False(t, HasSuffixN(buf, "cP", 3))
	require.True(t, HasSuffixN(buf, "c", 3))
	require.False(t, HasSuffixN(buf, "bc", 3))
	require.Equal(t, "abc", Identifier(buf, 3))
	require.Equal(t, "'ab", Identifier([]byte("'ab'POISON"), 3))
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "stops at paren", input: "foo_bar(baz)", n: 12, want: "foo_bar"},
		{name: "single quoted", input: "'it is'", n: 7, want: "'it is'"},
		{name: "digits first", input: "123abc", n: 6, want: "123abc"},
		{name: "empty", input: "", n: 0, want: ""},
		{name: "first byte fails", input: "+x", n: 2, want: ""},
		{name: "double quoted with comma", input: `"a,b" c`, n: 7, want: `"a,b"`},
		{name: "no nesting", input: `'say "hi"' x`, n: 12, want: `'say "hi"'`},
		{name: "second quote always closes", input: "'it''s'", n: 7, want: "'it'"},
		{name: "terminator", input: "abc\x00def", n: 7, want: "abc"},
		{name: "bound inside literal", input: "'abcdef'", n: 4, want: "'abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Identifier([]byte(tt.input), tt.n))
		})
	}
}

func TestIdentifierCopiesResult(t *testing.T) {
	buf := []byte("name rest")
	id := Identifier(buf, len(buf))
	buf[0] = 'X'
	require.Equal(t, "name", id)
}

func TestViewIdentifierWalk(t *testing.T) {
	v := NewView([]byte("a 'b c' d"))
	var got []string
	for v.Len() > 0 {
		tok := v.Identifier()
		if tok == "" {
			v = v.Advance(1)
			continue
		}
		got = append(got, tok)
		v = v.Advance(len(tok))
	}
	require.Equal(t, []string{"a", "'b c'", "d"}, got)
}

func FuzzIdentifier(f *testing.F) {
	for _, s := range []string{"", "abc", "'x y'", `"q`, "a(b)", "\x00"} {
		f.Add(s, len(s))
	}

	f.Fuzz(func(t *testing.T, input string, n int) {
		buf := []byte(input)
		id := Identifier(buf, n)
		require.LessOrEqual(t, len(id), len(buf))
		require.LessOrEqual(t, len(id), max(n, 0))
		require.True(t, HasPrefixN(buf, id, len(id)), "Identifier(%q, %d) = %q is not a prefix of the input", input, n, id)
	})
}

// Package fastscan implements the byte-level scanning primitives behind pkg/scan.
//
// Everything here operates on single bytes. No function retains its input after
// returning, and no function reads outside the slice or string it is given.
package fastscan

// charClass represents character classes for the identifier state machine
type charClass uint8

const (
	// everything else
	classOther charClass = iota
	// [0-9A-Za-z_]
	classIdent
	// '
	classSingleQuote
	// "
	classDoubleQuote
	// 0
	classTerminator
)

// charClassTable is a 256-entry lookup table for character classification.
var charClassTable [256]charClass

func init() {
	initCharClassTable()
}

// initCharClassTable initializes the character classification lookup table
func initCharClassTable() {
	for i := 0; i < 256; i++ {
		charClassTable[i] = classOther
	}
	for c := '0'; c <= '9'; c++ {
		charClassTable[c] = classIdent
	}
	for c := 'A'; c <= 'Z'; c++ {
		charClassTable[c] = classIdent
	}
	for c := 'a'; c <= 'z'; c++ {
		charClassTable[c] = classIdent
	}
	charClassTable['_'] = classIdent
	charClassTable['\''] = classSingleQuote
	charClassTable['"'] = classDoubleQuote
	charClassTable[0] = classTerminator
}

// IsIdentByte reports whether c may appear in a bare identifier.
func IsIdentByte(c byte) bool {
	return charClassTable[c] == classIdent
}

// IsQuote reports whether c opens a quoted token.
func IsQuote(c byte) bool {
	cl := charClassTable[c]
	return cl == classSingleQuote || cl == classDoubleQuote
}

// byteSet is a 256-bit membership set.
type byteSet [4]uint64

// newByteSet builds the set of bytes contained in chars.
func newByteSet(chars string) byteSet {
	var s byteSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s[c>>6] |= 1 << (c & 63)
	}
	return s
}

func (s *byteSet) contains(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

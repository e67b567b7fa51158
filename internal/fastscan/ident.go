package fastscan

import "unicode/utf8"

// quoteState tracks whether the identifier scan is inside a quoted literal.
type quoteState uint8

const (
	stateNormal quoteState = iota
	stateInSingleQuote
	stateInDoubleQuote
)

// Ident is the incremental form of IdentifierLen, for callers that see the
// input one character at a time. The zero value is ready to use.
type Ident struct {
	state quoteState
}

// Step feeds the next byte of input. accept reports whether c is part of the
// token; done reports whether the token is complete. Once done is true the
// scan is over and further calls are meaningless.
func (id *Ident) Step(c byte) (accept, done bool) {
	return id.step(charClassTable[c])
}

// StepRune is Step for decoded input. Runes outside ASCII are ordinary
// characters: rejected outside quotes and accepted inside them.
func (id *Ident) StepRune(r rune) (accept, done bool) {
	if r < 0 || r >= utf8.RuneSelf {
		return id.step(classOther)
	}
	return id.Step(byte(r))
}

func (id *Ident) step(class charClass) (accept, done bool) {
	if class == classTerminator {
		return false, true
	}

	switch id.state {
	case stateInSingleQuote:
		if class == classSingleQuote {
			id.state = stateNormal
			return true, true
		}
		return true, false
	case stateInDoubleQuote:
		if class == classDoubleQuote {
			id.state = stateNormal
			return true, true
		}
		return true, false
	}

	switch class {
	case classIdent:
		return true, false
	case classSingleQuote:
		id.state = stateInSingleQuote
		return true, false
	case classDoubleQuote:
		id.state = stateInDoubleQuote
		return true, false
	}
	return false, true
}

// InQuote reports whether the scan is inside an unterminated literal.
func (id *Ident) InQuote() bool {
	return id.state != stateNormal
}

// IdentifierLen returns the length of the identifier or quoted token at the
// start of b.
//
// Outside quotes the scan accepts [0-9A-Za-z_]. A quote byte opens a literal in
// which every byte is accepted until the same quote byte, which is consumed and
// ends the token. The other kind of quote is an ordinary byte inside a literal.
// A 0 byte or the end of b ends the scan; an unterminated literal runs to it.
func IdentifierLen(b []byte) int {
	var id Ident
	end := 0
	for end < len(b) {
		accept, done := id.Step(b[end])
		if accept {
			end++
		}
		if done {
			break
		}
	}
	return end
}

package tokenizer

import (
	"bytes"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-scan/internal/fastscan"
)

// NewTokenizer creates a tokenizer that splits text into identifiers, quoted
// literals, punctuation and whitespace runs.
//
// Matchers are tried in order:
// 1. Whitespace runs
// 2. Identifiers and quoted literals (the fastscan identifier scanner)
// 3. Any other single character except 0
//
// A 0 byte matches nothing, so tokenization stops there.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SpaceMatcher(),
		IdentifierMatcher(),
		PunctMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
// This is used internally to support streaming from io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SpaceMatcher matches a run of spaces, tabs, carriage returns and newlines.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return spaceMatcherByte(byteStream)
		}
		return spaceMatcherRune(stream)
	}
}

func spaceMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()
	for {
		b, ok := stream.PeekByte()
		if !ok || !isSpace(rune(b)) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}
	return tokenizer.NewToken(TokenSpace, []rune(string(stream.SliceFrom(startPos))))
}

func spaceMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune
	for {
		r, ok := stream.PeekChar()
		if !ok || !isSpace(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenSpace, value)
}

// IdentifierMatcher matches one identifier or quoted literal, as defined by
// fastscan.IdentifierLen.
//
// Grammar:
//
//	Token = { IdentChar | Literal } ;
//	IdentChar = [0-9A-Za-z_] ;
//	Literal = "'" { <any but ' or 0> } [ "'" ] | '"' { <any but " or 0> } [ '"' ] ;
//
// Performance: Uses ByteStream to scan the buffered bytes without decoding.
func IdentifierMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return identifierMatcherByte(byteStream)
		}
		return identifierMatcherRune(stream)
	}
}

func identifierMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	n := fastscan.IdentifierLen(stream.RemainingBytes())
	if n == 0 {
		return nil
	}

	startPos := stream.BytePosition()
	for i := 0; i < n; i++ {
		if _, ok := stream.NextByte(); !ok {
			return nil
		}
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(identKind(value), []rune(string(value)))
}

func identifierMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var id fastscan.Ident
	var value []rune
	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		accept, done := id.StepRune(r)
		if accept {
			stream.NextChar()
			value = append(value, r)
		}
		if done {
			break
		}
	}

	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(identKind([]byte(string(value))), value)
}

// PunctMatcher matches any single character that no other matcher claims,
// except 0.
func PunctMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return punctMatcherByte(byteStream)
		}
		return punctMatcherRune(stream)
	}
}

func punctMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	rest := stream.RemainingBytes()
	if len(rest) == 0 || claimed(rest[0]) {
		return nil
	}

	// Keep multi-byte characters whole
	_, size := utf8.DecodeRune(rest)
	startPos := stream.BytePosition()
	for i := 0; i < size; i++ {
		if _, ok := stream.NextByte(); !ok {
			return nil
		}
	}
	return tokenizer.NewToken(TokenPunct, []rune(string(stream.SliceFrom(startPos))))
}

func punctMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	r, ok := stream.PeekChar()
	if !ok || (r < utf8.RuneSelf && claimed(byte(r))) {
		return nil
	}
	stream.NextChar()
	return tokenizer.NewToken(TokenPunct, []rune{r})
}

// claimed reports whether c starts a token of another kind or ends the input.
func claimed(c byte) bool {
	return c == 0 || isSpace(rune(c)) || fastscan.IsIdentByte(c) || fastscan.IsQuote(c)
}

func identKind(value []byte) string {
	if bytes.ContainsAny(value, `'"`) {
		return TokenQuoted
	}
	return TokenIdent
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

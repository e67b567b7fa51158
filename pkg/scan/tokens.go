package scan

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-scan/internal/tokenizer"
	"github.com/shapestone/shape-scan/pkg/trace"
)

// Token kinds returned by Tokenize.
const (
	KindSpace  = tokenizer.TokenSpace  // run of spaces, tabs, CR and LF
	KindIdent  = tokenizer.TokenIdent  // identifier bytes only
	KindQuoted = tokenizer.TokenQuoted // identifier containing a quoted literal
	KindPunct  = tokenizer.TokenPunct  // any other single character
)

// Token is one lexical token of the input.
type Token struct {
	Kind   string
	Value  string
	Offset int // byte offset, 0-indexed
	Line   int // 1-indexed
	Column int // 1-indexed
}

// Tokenize splits input into identifiers, quoted literals and punctuation,
// dropping whitespace. Identifiers and literals follow Identifier.
//
// Tokenization stops at a 0 byte; the tokens before it are returned along
// with a *ScanError wrapping ErrUnexpectedByte.
//
// Example:
//
//	tokens, err := scan.Tokenize("print('hi there')")
//	// Ident "print", Punct "(", Quoted "'hi there'", Punct ")"
func Tokenize(input string) ([]Token, error) {
	return TokenizeWithOptions(input, DefaultTokenizeOptions())
}

// TokenizeWithOptions is Tokenize with custom options.
func TokenizeWithOptions(input string, opts TokenizeOptions) ([]Token, error) {
	return tokenizeStream(shapetokenizer.NewStream(input), opts)
}

// TokenizeReader tokenizes everything read from reader.
func TokenizeReader(reader io.Reader) ([]Token, error) {
	return TokenizeReaderWithOptions(reader, DefaultTokenizeOptions())
}

// TokenizeReaderWithOptions tokenizes everything read from reader with custom options.
func TokenizeReaderWithOptions(reader io.Reader, opts TokenizeOptions) ([]Token, error) {
	return tokenizeStream(shapetokenizer.NewStreamFromReader(reader), opts)
}

func tokenizeStream(stream shapetokenizer.Stream, opts TokenizeOptions) ([]Token, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	defer trace.Enter(logger, "scan.Tokenize").Exit()

	tok := tokenizer.NewTokenizerWithStream(stream)
	tokens := make([]Token, 0, 16)
	for {
		t, ok := tok.NextToken()
		if !ok {
			break
		}
		if t.Kind() == KindSpace && !opts.KeepSpace {
			continue
		}
		tokens = append(tokens, Token{
			Kind:   t.Kind(),
			Value:  t.ValueString(),
			Offset: t.Offset(),
			Line:   t.Row(),
			Column: t.Column(),
		})
	}

	if !stream.IsEos() {
		loc := stream.GetLocation()
		level.Debug(logger).Log("msg", "tokenizer stopped before end of input", "offset", loc.Cursor)
		return tokens, &ScanError{
			Offset: loc.Cursor,
			Line:   loc.Row,
			Column: loc.Column,
			Err:    ErrUnexpectedByte,
		}
	}
	return tokens, nil
}

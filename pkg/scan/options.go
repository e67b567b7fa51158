package scan

import (
	"github.com/go-kit/log"
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-scan/internal/parser"
)

// LineOptions configures how ParseLines and Scanner split lines into fields.
type LineOptions struct {
	// Delimiters, if not empty, splits fields on any of its bytes (as SplitAny)
	// instead of on spaces (as SplitN).
	// Default: "" (space splitting)
	Delimiters string

	// MaxPartitions is the SplitN limit for space splitting. It cannot be
	// combined with Delimiters.
	// Default: 0 (no limit)
	MaxPartitions int

	// Comment, if not 0, is the comment byte. Lines whose first byte other
	// than space or tab is Comment are skipped.
	// Default: 0 (disabled)
	Comment byte

	// Logger receives debug output.
	// Default: no-op logger
	Logger log.Logger
}

// DefaultLineOptions returns the default line configuration.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		Delimiters:    "",
		MaxPartitions: 0,
		Comment:       0,
		Logger:        log.NewNopLogger(),
	}
}

// Validate reports whether the options can be used together.
func (o LineOptions) Validate() error {
	return o.parserOptions().Validate()
}

func (o LineOptions) parserOptions() parser.Options {
	return parser.Options{
		Delimiters:    o.Delimiters,
		MaxPartitions: o.MaxPartitions,
		Comment:       o.Comment,
		Logger:        o.Logger,
	}
}

// TokenizeOptions configures Tokenize.
type TokenizeOptions struct {
	// KeepSpace controls whether whitespace runs are returned as KindSpace tokens.
	// Default: false
	KeepSpace bool

	// Logger receives debug output.
	// Default: no-op logger
	Logger log.Logger
}

// DefaultTokenizeOptions returns the default tokenizer configuration.
func DefaultTokenizeOptions() TokenizeOptions {
	return TokenizeOptions{
		KeepSpace: false,
		Logger:    log.NewNopLogger(),
	}
}

// ParseLines parses line-oriented text into an AST.
//
// Returns an ast.ArrayDataNode with one element per record:
//   - Each record is an *ast.ArrayDataNode of fields, for a line with at least one field
//   - Each field is an *ast.LiteralNode containing a string value
//
// Blank lines and comment lines produce no record.
//
// Example:
//
//	opts := scan.DefaultLineOptions()
//	opts.MaxPartitions = 2
//	node, err := scan.ParseLines("echo hello world\nexit", opts)
//	// records: ["echo", "hello world"], ["exit"]
func ParseLines(input string, opts LineOptions) (ast.SchemaNode, error) {
	return parser.NewParserWithOptions(input, opts.parserOptions()).Parse()
}

// Package parser turns line-oriented text into Shape's AST.
//
// Each non-blank, non-comment line becomes a record; its fields come from the
// fastscan split primitives. Records and fields carry their source position.
package parser

import (
	"errors"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-scan/internal/fastscan"
	"github.com/shapestone/shape-scan/pkg/trace"
)

// ErrConflictingOptions is returned when both a delimiter set and a partition
// limit are configured. Delimiter-set splitting has no tail rule.
var ErrConflictingOptions = errors.New("delimiters and max partitions are mutually exclusive")

// Options configures how lines are split into fields.
type Options struct {
	// Delimiters, if not empty, splits on any of its bytes instead of on spaces.
	Delimiters string
	// MaxPartitions caps the fields per line for space splitting; the rest of
	// the line becomes the last field. 0 or negative means no limit.
	MaxPartitions int
	// Comment, if not 0, marks lines whose first non-blank byte it is as comments.
	Comment byte
	// Logger receives debug output. Default: no-op.
	Logger log.Logger
}

// DefaultOptions returns default parser options: space splitting, no limit,
// no comments.
func DefaultOptions() Options {
	return Options{
		Delimiters:    "",
		MaxPartitions: 0,
		Comment:       0,
		Logger:        log.NewNopLogger(),
	}
}

// Validate reports whether the options can be used together.
func (o Options) Validate() error {
	if o.Delimiters != "" && o.MaxPartitions > 0 {
		return ErrConflictingOptions
	}
	return nil
}

// IsComment reports whether line is a comment line under these options.
func (o Options) IsComment(line string) bool {
	if o.Comment == 0 {
		return false
	}
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed != "" && trimmed[0] == o.Comment
}

// AppendFields appends the fields of line to dst.
func (o Options) AppendFields(dst []string, line string) []string {
	if o.Delimiters != "" {
		return fastscan.AppendFieldsAny(dst, line, o.Delimiters)
	}
	return fastscan.AppendFields(dst, line, o.MaxPartitions)
}

// AppendSpans is AppendFields reporting each field as its byte range in line.
func (o Options) AppendSpans(dst []fastscan.Span, line string) []fastscan.Span {
	if o.Delimiters != "" {
		return fastscan.AppendFieldSpansAny(dst, line, o.Delimiters)
	}
	return fastscan.AppendFieldSpans(dst, line, o.MaxPartitions)
}

// Parser builds an AST from line-oriented text.
type Parser struct {
	input  string
	opts   Options
	logger log.Logger
}

// NewParser creates a parser for input with default options.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a parser for input with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Parser{input: input, opts: opts, logger: logger}
}

// Parse parses the input and returns an AST representing its records.
//
// Grammar:
//
//	File = { Line } ;
//	Line = Comment | Blank | Record ;
//	Record = Field { Delimiter Field } ;
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of fields and each field is a LiteralNode holding a string.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	defer trace.Enter(p.logger, "parser.Parse").Exit()

	if err := p.opts.Validate(); err != nil {
		return nil, err
	}

	records := make([]ast.SchemaNode, 0, 16)
	var spans []fastscan.Span

	offset := 0
	row := 1
	for offset <= len(p.input) {
		line, next := p.nextLine(offset)

		if p.opts.IsComment(line) {
			level.Debug(p.logger).Log("msg", "skipping comment line", "line", row)
		} else {
			spans = p.opts.AppendSpans(spans[:0], line)
			if len(spans) > 0 {
				records = append(records, p.parseRecord(line, spans, offset, row))
			}
		}

		if next < 0 {
			break
		}
		offset = next
		row++
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// nextLine returns the line starting at offset without its terminator, and
// the offset of the following line, or -1 at the end of input.
func (p *Parser) nextLine(offset int) (string, int) {
	rest := p.input[offset:]
	i := strings.IndexByte(rest, '\n')
	if i < 0 {
		return rest, -1
	}
	return strings.TrimSuffix(rest[:i], "\r"), offset + i + 1
}

// parseRecord builds the node for one line from the byte ranges of its fields.
func (p *Parser) parseRecord(line string, spans []fastscan.Span, lineOffset, row int) ast.SchemaNode {
	nodes := make([]ast.SchemaNode, 0, len(spans))
	for _, sp := range spans {
		field := line[sp.Start:sp.End]
		nodes = append(nodes, ast.NewLiteralNode(field, ast.NewPosition(lineOffset+sp.Start, row, sp.Start+1)))
	}
	return ast.NewArrayDataNode(nodes, ast.NewPosition(lineOffset, row, 1))
}

package scan

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/shapestone/shape-scan/internal/parser"
)

// DefaultMaxLineSize is the longest line a Scanner accepts unless changed
// with SetMaxLineSize.
const DefaultMaxLineSize = 1 << 20

// Scanner provides a streaming interface for reading line records one at a time.
// Blank and comment lines are skipped; every other line is split into fields
// according to its LineOptions.
//
// Example usage:
//
//	file, _ := os.Open("commands.txt")
//	defer file.Close()
//
//	scanner := scan.NewScanner(file).SetOptions(scan.LineOptions{MaxPartitions: 2, Comment: '#'})
//	for scanner.Scan() {
//	    fields := scanner.Fields()
//	    fmt.Println(scanner.Line(), fields)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader      io.Reader
	lines       *bufio.Scanner
	opts        parser.Options
	logger      log.Logger
	maxLineSize int
	reuseFields bool
	fields      []string
	line        int
	err         error
}

// NewScanner creates a new Scanner that reads lines from the given io.Reader
// using DefaultLineOptions.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		reader:      reader,
		opts:        DefaultLineOptions().parserOptions(),
		logger:      log.NewNopLogger(),
		maxLineSize: DefaultMaxLineSize,
	}
}

// SetOptions sets how lines are split. It must be called before the first Scan.
// Returns the Scanner for method chaining.
func (s *Scanner) SetOptions(opts LineOptions) *Scanner {
	s.opts = opts.parserOptions()
	s.logger = opts.Logger
	if s.logger == nil {
		s.logger = log.NewNopLogger()
	}
	return s
}

// SetMaxLineSize sets the longest accepted line in bytes; 0 or negative
// restores DefaultMaxLineSize. It must be called before the first Scan.
// Returns the Scanner for method chaining.
func (s *Scanner) SetMaxLineSize(n int) *Scanner {
	if n <= 0 {
		n = DefaultMaxLineSize
	}
	s.maxLineSize = n
	return s
}

// SetReuseFields sets whether successive calls to Fields may return slices
// sharing one backing array. This avoids an allocation per line but means a
// previous result is overwritten by the next Scan.
// Returns the Scanner for method chaining.
func (s *Scanner) SetReuseFields(reuse bool) *Scanner {
	s.reuseFields = reuse
	return s
}

// Scan advances to the next record. It returns false at the end of input or
// on error; Err tells them apart.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.lines == nil {
		if err := s.opts.Validate(); err != nil {
			s.err = err
			return false
		}
		s.lines = bufio.NewScanner(s.reader)
		s.lines.Buffer(make([]byte, 0, min(4096, s.maxLineSize)), s.maxLineSize)
	}

	for s.lines.Scan() {
		s.line++
		line := strings.TrimSuffix(s.lines.Text(), "\r")
		if s.opts.IsComment(line) {
			level.Debug(s.logger).Log("msg", "skipping comment line", "line", s.line)
			continue
		}

		var dst []string
		if s.reuseFields {
			dst = s.fields[:0]
		}
		s.fields = s.opts.AppendFields(dst, line)
		if len(s.fields) > 0 {
			return true
		}
	}

	if err := s.lines.Err(); err != nil {
		s.err = &ScanError{Line: s.line + 1, Err: err}
		level.Debug(s.logger).Log("msg", "read failed", "line", s.line+1, "err", err)
	}
	s.fields = nil
	return false
}

// Fields returns the fields of the current record.
func (s *Scanner) Fields() []string {
	return s.fields
}

// Line returns the 1-indexed line number of the current record.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

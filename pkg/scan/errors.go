package scan

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-scan/internal/parser"
)

// ScanError represents a tokenizing or line-scanning error with position information.
type ScanError struct {
	// Offset is the byte offset of the error in the input (0-indexed).
	Offset int
	// Line is the line where the error occurred (1-indexed).
	Line int
	// Column is the column where the error occurred (1-indexed, 0 if unknown).
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ScanError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("scan error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("scan error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	// ErrUnexpectedByte indicates input no token can start with (a 0 byte).
	ErrUnexpectedByte = errors.New("unexpected byte")

	// ErrConflictingOptions indicates both Delimiters and MaxPartitions were set.
	ErrConflictingOptions = parser.ErrConflictingOptions
)

package csvstore

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile   = errors.New("record file not found")
	ErrEmptyFile     = errors.New("record file has no header")
	ErrMissingColumn = errors.New("required column is missing")

	// ErrIncompleteReplace means an earlier write stopped between renames and
	// the directory may mix old and new record sets.
	ErrIncompleteReplace = errors.New("interrupted replace left mixed record files, re-run seed --force")
)

// ParseError locates a malformed value. Line is 1-based and counts the header.
type ParseError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %s: %v", e.File, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

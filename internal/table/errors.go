package table

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an optional input file does not exist.
var ErrNotFound = errors.New("table file not found")

var errNoRows = errors.New("no data rows")

// ParseError reports malformed input. Line is 1-based and counts the header.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("parse %s: line %d, column %q: %v", e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

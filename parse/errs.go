package parse

import (
	"errors"
	"fmt"

	"github.com/tony-format/yamline/line"
)

var (
	ErrParse = errors.New("parse error")
	ErrEmpty = fmt.Errorf("%w: no significant lines", ErrParse)
)

// ParseError reports lines which could not be read as YAML.
type ParseError struct {
	// Line is the 1-based line at which reading started.
	Line int
	// Lines is the number of lines which were being read.
	Lines int

	msg string
	err error
}

func (e *ParseError) Error() string {
	return e.msg
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// structureError is returned when no structure could be detected in lines
// following prev.
func structureError(prev *line.Line, lines line.Lines) *ParseError {
	start := prev.Number() + 2
	return &ParseError{
		Line:  start,
		Lines: lines.Len(),
		msg: fmt.Sprintf("Could not parse YAML starting at line %d or detect its structure, but it has %d lines",
			start, lines.Len()),
		err: ErrParse,
	}
}

func emptyError(prev *line.Line, lines line.Lines) *ParseError {
	e := structureError(prev, lines)
	e.err = ErrEmpty
	return e
}

func lineError(ln *line.Line, lines line.Lines, format string, args ...any) *ParseError {
	return &ParseError{
		Line:  ln.Number() + 1,
		Lines: lines.Len(),
		msg:   fmt.Sprintf("line %d: ", ln.Number()+1) + fmt.Sprintf(format, args...),
		err:   ErrParse,
	}
}

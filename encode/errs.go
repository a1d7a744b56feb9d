package encode

import "errors"

var (
	ErrEncoding     = errors.New("encoding error")
	ErrStreamClosed = errors.New("stream closed")
)

// IOError is an error writing to or closing the target of a Printer.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

package ir

import (
	"errors"
)

var (
	ErrType        = errors.New("wrong node type")
	ErrUnsupported = errors.New("unsupported value")
	ErrJSON        = errors.New("json")
)

package token

import (
	"errors"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrNoSeparator  = errors.New("no key separator")
	ErrColonSpace   = errors.New("colon should be followed by space")
)

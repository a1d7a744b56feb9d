package ir

import "fmt"

// ScalarStyle records how a scalar was written.
type ScalarStyle int

const (
	// AutoStyle scalars are quoted by the encoder as needed.
	AutoStyle ScalarStyle = iota
	// PlainStyle scalars came unquoted from source and are printed as is.
	PlainStyle
	SingleQuotedStyle
	DoubleQuotedStyle
)

func (s ScalarStyle) String() string {
	switch s {
	case AutoStyle:
		return "auto"
	case PlainStyle:
		return "plain"
	case SingleQuotedStyle:
		return "single"
	case DoubleQuotedStyle:
		return "double"
	default:
		return "<unknown style>"
	}
}

func (s ScalarStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ScalarStyle) UnmarshalText(d []byte) error {
	switch string(d) {
	case "auto":
		*s = AutoStyle
	case "plain":
		*s = PlainStyle
	case "single":
		*s = SingleQuotedStyle
	case "double":
		*s = DoubleQuotedStyle
	default:
		return fmt.Errorf("unrecognized style %q", d)
	}
	return nil
}

// StyleOf returns the style for a scalar quoted with q, as returned by
// token.Unquote.
func StyleOf(q byte) ScalarStyle {
	switch q {
	case '\'':
		return SingleQuotedStyle
	case '"':
		return DoubleQuotedStyle
	default:
		return PlainStyle
	}
}

// Quote returns the quote character of the style, or 0.
func (s ScalarStyle) Quote() byte {
	switch s {
	case SingleQuotedStyle:
		return '\''
	case DoubleQuotedStyle:
		return '"'
	default:
		return 0
	}
}

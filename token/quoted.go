package token

import (
	"strings"
)

// Special holds the characters which make a plain scalar ambiguous in
// YAML. A value containing any of them is double quoted by Escape.
const Special = "?:-#|>'%@\\`,[]{}&*!"

// IsQuoted reports whether v starts and ends with the same quote character.
func IsQuoted(v string) bool {
	n := len(v)
	if n < 2 {
		return false
	}
	return (v[0] == '"' || v[0] == '\'') && v[n-1] == v[0]
}

// Unquote removes matching outer quotes from v and returns the quote
// character, or 0 if v was not quoted.  No escape sequences are
// interpreted, so wrapping the result in the same quote restores v exactly.
func Unquote(v string) (string, byte) {
	if !IsQuoted(v) {
		return v, 0
	}
	return v[1 : len(v)-1], v[0]
}

// NeedsQuote reports whether v would change meaning as a plain scalar.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	return strings.ContainsAny(v, Special)
}

// Escape returns v in a form which can be printed as a YAML scalar.
//
// Values already wrapped in matching quotes are returned unchanged. Values
// containing a double quote are wrapped in single quotes, otherwise values
// with special characters are wrapped in double quotes. No backslash
// escaping is performed.
func Escape(v string) string {
	switch {
	case IsQuoted(v):
		return v
	case strings.Contains(v, `"`):
		return "'" + v + "'"
	case NeedsQuote(v):
		return `"` + v + `"`
	default:
		return v
	}
}

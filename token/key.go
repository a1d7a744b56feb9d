package token

import (
	"fmt"
	"strings"
)

// SplitKey splits a mapping entry at its key separator, the first ": " or a
// trailing ":".  A key starting with a quote is scanned to its closing quote
// first, so the separator may not be inside a quoted key.  The returned key
// keeps its quotes; rest is trimmed.
func SplitKey(text string) (key, rest string, err error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", "", ErrNoSeparator
	}
	if t[0] == '"' || t[0] == '\'' {
		end, err := quotedEnd(t)
		if err != nil {
			return "", "", err
		}
		after := strings.TrimLeft(t[end:], " ")
		if after == "" || after[0] != ':' {
			return "", "", fmt.Errorf("%w after %s", ErrNoSeparator, t[:end])
		}
		if len(after) > 1 && after[1] != ' ' {
			return "", "", fmt.Errorf("%w: %q", ErrColonSpace, t)
		}
		return t[:end], strings.TrimSpace(after[1:]), nil
	}
	if i := strings.Index(t, ": "); i != -1 {
		return strings.TrimRight(t[:i], " "), strings.TrimSpace(t[i+2:]), nil
	}
	if strings.HasSuffix(t, ":") {
		return strings.TrimRight(t[:len(t)-1], " "), "", nil
	}
	return "", "", ErrNoSeparator
}

// HasKey reports whether text is a mapping entry.
func HasKey(text string) bool {
	_, _, err := SplitKey(text)
	return err == nil
}

// quotedEnd returns the index just past the closing quote of the quoted
// string starting t.  Single quotes escape by doubling, double quotes by
// backslash.
func quotedEnd(t string) (int, error) {
	q := t[0]
	n := len(t)
	for i := 1; i < n; i++ {
		c := t[i]
		switch {
		case q == '"' && c == '\\':
			i++
		case c == q:
			if q == '\'' && i+1 < n && t[i+1] == '\'' {
				i++
				continue
			}
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w %c in %q", ErrUnterminated, q, t)
}

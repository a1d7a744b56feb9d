package parse

import (
	"strings"

	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
	"github.com/tony-format/yamline/token"
)

// Parse reads a single YAML document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseLines(line.Split(d), opts...)
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseLines reads a single YAML document from lines.  A leading "---"
// marker and a trailing "..." marker are dropped.  The marker, or a leading
// line consisting of a block indicator, introduces the rest of the lines,
// so
//
//	--- |
//	  text
//
// is a literal block scalar.
func ParseLines(lines line.Lines, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var prev *line.Line
	start, end := 0, lines.Len()
markers:
	for {
		i := lines.Sub(start, end).First()
		if i == -1 {
			break
		}
		ln := lines.At(start + i)
		switch {
		case prev == nil && isDocStart(ln):
		case token.IndicatorOf(prev.Text()) == token.NoIndicator && ln.Indent() == 0 &&
			token.ParseIndicator(ln.Text()) != token.NoIndicator:
		default:
			break markers
		}
		prev = ln
		start += i + 1
	}
	for j := end - 1; j >= start; j-- {
		ln := lines.At(j)
		if ln.IsBlank() {
			continue
		}
		if ln.Indent() == 0 && ln.Trimmed() == "..." {
			end = j
		}
		break
	}
	r := &reader{opts: pOpts}
	return r.toNode(lines.Sub(start, end), prev)
}

func isDocStart(ln *line.Line) bool {
	t := ln.Text()
	if !strings.HasPrefix(t, "---") {
		return false
	}
	rest := t[3:]
	return strings.TrimSpace(rest) == "" || rest[0] == ' ' && token.ParseIndicator(rest) != token.NoIndicator
}

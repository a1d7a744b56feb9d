package parse

import (
	"strings"

	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
)

func readLiteral(lines line.Lines) *ir.Node {
	return ir.FromLiteral(deindent(lines))
}

func readFolded(lines line.Lines) *ir.Node {
	ls := deindent(lines)
	return ir.FromFolded(fold(ls), ls)
}

// deindent removes the smallest indentation of the non blank lines from
// every line.  Blank lines become empty and trailing ones are dropped.
func deindent(lines line.Lines) []string {
	min := -1
	for _, ln := range lines.All() {
		if ln.IsBlank() {
			continue
		}
		if ind := ln.Indent(); min == -1 || ind < min {
			min = ind
		}
	}
	res := make([]string, 0, lines.Len())
	for _, ln := range lines.All() {
		if ln.IsBlank() {
			res = append(res, "")
			continue
		}
		res = append(res, ln.Text()[min:])
	}
	n := len(res)
	for n > 0 && res[n-1] == "" {
		n--
	}
	return res[:n]
}

type foldState int

const (
	foldStart foldState = iota
	foldText
	foldMore
	foldBlank
)

// fold joins de-indented lines the way a folded block scalar does: runs of
// text lines are joined by spaces, blank lines are line breaks and more
// indented lines keep their own lines.
func fold(lines []string) string {
	b := &strings.Builder{}
	state := foldStart
	for _, ln := range lines {
		switch {
		case ln == "":
			b.WriteByte('\n')
			state = foldBlank
		case ln[0] == ' ' || ln[0] == '\t':
			if state == foldText || state == foldMore {
				b.WriteByte('\n')
			}
			b.WriteString(ln)
			state = foldMore
		default:
			switch state {
			case foldText:
				b.WriteByte(' ')
			case foldMore:
				b.WriteByte('\n')
			}
			b.WriteString(ln)
			state = foldText
		}
	}
	return b.String()
}

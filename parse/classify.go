package parse

import (
	"strings"

	"github.com/tony-format/yamline/debug"
	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
	"github.com/tony-format/yamline/token"
)

// ToNode classifies lines into a node.  prev is the line which introduced
// lines, nil for the start of a document; a block indicator ending prev
// decides the construct before the lines themselves are looked at.
//
// When guess is true, entries which are less indented than the first entry
// of their collection are read as its siblings rather than rejected.
func ToNode(lines line.Lines, prev *line.Line, guess bool) (*ir.Node, error) {
	r := &reader{opts: &parseOpts{guess: guess}}
	return r.toNode(lines, prev)
}

type reader struct {
	opts *parseOpts
}

func (r *reader) toNode(lines line.Lines, prev *line.Line) (*ir.Node, error) {
	ind := token.IndicatorOf(prev.Text())
	switch ind {
	case token.LiteralIndicator:
		r.trace(prev, lines, "literal")
		return readLiteral(lines), nil
	case token.FoldedIndicator:
		r.trace(prev, lines, "folded")
		return readFolded(lines), nil
	case token.CompactSeqIndicator:
		r.trace(prev, lines, "bare sequence")
		return readBareSequence(lines), nil
	}
	sig := lines.Significant()
	if sig.Len() == 0 {
		return nil, emptyError(prev, lines)
	}
	first := sig.At(0)
	if sig.Len() == 1 {
		if v, ok := singleLineScalar(first); ok {
			r.trace(prev, lines, "raw scalar")
			return v, nil
		}
	}
	switch {
	case first.IsDashItem():
		r.trace(prev, lines, "sequence")
		return r.readSequence(lines)
	case token.HasKey(first.Text()):
		r.trace(prev, lines, "mapping")
		return r.readMapping(lines)
	case sig.Len() == 1:
		r.trace(prev, lines, "scalar")
		return readPlain(first.Text()), nil
	}
	return nil, structureError(prev, lines)
}

// singleLineScalar reads lone lines which look like the start of a
// collection but are not: in "arn:aws:s3: x" the first colon is not
// followed by a space and "-foo" has a dash without one.  Their full text is
// the value.  A line which is quoted as a whole is left to the plain scalar
// reader, and a quoted key is skipped before looking for the colon.
func singleLineScalar(ln *line.Line) (*ir.Node, bool) {
	t := ln.Trimmed()
	if token.IsQuoted(t) {
		return nil, false
	}
	switch {
	case !ln.IsDashItem() && bareColon(t):
	case strings.HasPrefix(t, "-") && !ln.IsDashItem():
	default:
		return nil, false
	}
	return ir.FromStyled(t, ir.PlainStyle), true
}

// bareColon reports whether the first colon of t is followed by something
// other than a space.
func bareColon(t string) bool {
	if t[0] == '"' || t[0] == '\'' {
		return strings.Contains(t, ":") && !token.HasKey(t)
	}
	i := strings.IndexByte(t, ':')
	return i != -1 && i+1 < len(t) && t[i+1] != ' '
}

func (r *reader) trace(prev *line.Line, lines line.Lines, what string) {
	if !debug.Classify() {
		return
	}
	debug.Logf("classify after line %d (%d lines): %s\n", prev.Number()+1, lines.Len(), what)
}

// entry is one line at the base indentation of a collection together with
// the lines nested under it.
type entry struct {
	head   *line.Line
	nested line.Lines
}

// entries groups lines into the entries of a collection.  With
// sameIndentSeq, sequence items at the indentation of an entry belong to
// it, as YAML allows for sequences under mapping keys.
func (r *reader) entries(lines line.Lines, sameIndentSeq bool) ([]entry, error) {
	base := lines.BaseIndent()
	res := []entry{}
	n := lines.Len()
	for i := 0; i < n; {
		ln := lines.At(i)
		if !ln.Significant() {
			i++
			continue
		}
		if ind := ln.Indent(); ind != base && !(ind < base && r.opts.guess) {
			return nil, lineError(ln, lines, "bad indentation: expected %d spaces, found %d", base, ind)
		}
		end := lines.BlockEndFrom(i, base, sameIndentSeq)
		res = append(res, entry{head: ln, nested: lines.Sub(i+1, end).TrimBlank()})
		i = end
	}
	return res, nil
}

// blockValue reads the value introduced by head whose inline part is empty
// or a block indicator.
func (r *reader) blockValue(head *line.Line, rest string, nested line.Lines) (*ir.Node, error) {
	if token.ParseIndicator(rest) == token.NoIndicator && nested.Significant().Len() == 0 {
		return ir.FromStyled("", ir.PlainStyle), nil
	}
	return r.toNode(nested, head)
}

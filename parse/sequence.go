package parse

import (
	"strings"

	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
	"github.com/tony-format/yamline/token"
)

func (r *reader) readSequence(lines line.Lines) (*ir.Node, error) {
	ents, err := r.entries(lines, false)
	if err != nil {
		return nil, err
	}
	vals := make([]*ir.Node, 0, len(ents))
	for _, ent := range ents {
		if !ent.head.IsDashItem() {
			return nil, lineError(ent.head, lines, "expected a sequence item, got %q", ent.head.Trimmed())
		}
		v, err := r.item(ent)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return ir.FromSlice(vals), nil
}

// item reads the value of a dash item.  The text after the dash is moved
// to its own line at the column where it starts, so that it and the lines
// nested under the dash are read together, as in
//
//	- name: a
//	  size: 2
func (r *reader) item(ent entry) (*ir.Node, error) {
	text := ent.head.Text()
	col := ent.head.Indent() + 1
	for col < len(text) && text[col] == ' ' {
		col++
	}
	rest := strings.TrimSpace(text[col:])
	if rest == "" || token.ParseIndicator(rest) != token.NoIndicator {
		return r.blockValue(ent.head, rest, ent.nested)
	}
	sub := line.NewLines(line.New(strings.Repeat(" ", col)+rest, ent.head.Number())).Append(ent.nested)
	// sub is introduced by a bare "-" standing in for the dash line: it
	// carries no indicator, and its number puts error positions at the
	// dash line.
	return r.toNode(sub, line.New("-", ent.head.Number()-1))
}

// readBareSequence reads the lines under a "|-" indicator, each of which is
// one value.  Lines starting with "#" are values too; only blank lines are
// skipped.
func readBareSequence(lines line.Lines) *ir.Node {
	vals := []*ir.Node{}
	for _, ln := range lines.All() {
		if ln.IsBlank() {
			continue
		}
		vals = append(vals, ir.FromStyled(ln.Trimmed(), ir.PlainStyle))
	}
	return ir.FromSlice(vals)
}

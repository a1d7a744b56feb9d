package parse

import (
	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
	"github.com/tony-format/yamline/token"
)

func (r *reader) readMapping(lines line.Lines) (*ir.Node, error) {
	ents, err := r.entries(lines, true)
	if err != nil {
		return nil, err
	}
	kvs := make([]ir.KeyVal, 0, len(ents))
	for _, ent := range ents {
		k, rest, err := token.SplitKey(ent.head.Text())
		if err != nil {
			return nil, lineError(ent.head, lines, "expected a mapping entry: %v", err)
		}
		var v *ir.Node
		switch {
		case rest == "" || token.ParseIndicator(rest) != token.NoIndicator:
			v, err = r.blockValue(ent.head, rest, ent.nested)
			if err != nil {
				return nil, err
			}
		case ent.nested.Significant().Len() != 0:
			return nil, lineError(ent.head, lines, "key %s has a value and nested lines", k)
		default:
			v = readPlain(rest)
		}
		kvs = append(kvs, ir.KeyVal{Key: readPlain(k), Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

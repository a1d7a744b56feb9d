package ir

import (
	"fmt"
	"strings"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Style  ScalarStyle
	Lines  []string
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Style = y.Style
	if y.Lines != nil {
		dst.Lines = append([]string(nil), y.Lines...)
	}
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.CloneTo(&Node{})
		dstI.Parent = dst
		dst.Fields[i] = dstI
	}
	return dst
}

// FromString returns a scalar which the encoder quotes as needed.
func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

// FromStyled returns a scalar with the given style.
func FromStyled(v string, style ScalarStyle) *Node {
	return &Node{Type: ScalarType, String: v, Style: style}
}

// FromLiteral returns a literal block scalar holding lines joined by
// newlines.
func FromLiteral(lines []string) *Node {
	return &Node{
		Type:   LiteralBlockScalarType,
		String: strings.Join(lines, "\n"),
		Lines:  lines,
	}
}

// FromFolded returns a folded block scalar whose value v is the folding of
// lines.
func FromFolded(v string, lines []string) *Node {
	return &Node{
		Type:   FoldedBlockScalarType,
		String: v,
		Lines:  lines,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: SequenceType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals returns a mapping with the pairs in order.  Keys are not
// deduplicated.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.ParentField = kv.Key.String
		kv.Val.ParentField = kv.Key.String
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Get returns the value of the first key equal to field, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the mapping keys in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// KeyVals returns the pairs of a mapping.
func (y *Node) KeyVals() ([]KeyVal, error) {
	if y.Type != MappingType {
		return nil, fmt.Errorf("%w: %s is not a mapping", ErrType, y.Type)
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res, nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Size() int {
	if y.Type.IsScalar() {
		return 1
	}
	return len(y.Values)
}

package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// All scalar types compare by value, so a literal block scalar equals a
// plain scalar with the same string.  Styles are not compared.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case ScalarType, LiteralBlockScalarType, FoldedBlockScalarType:
		return strings.Compare(a.String, b.String)
	case SequenceType:
		return compareNodes(a.Values, b.Values)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: scalars < Sequence < Mapping
func rank(t Type) int {
	switch t {
	case ScalarType, LiteralBlockScalarType, FoldedBlockScalarType:
		return 0
	case SequenceType:
		return 1
	case MappingType:
		return 2
	}
	return 100
}

func compareNodes(a, b []*Node) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareMappings(a, b *Node) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}

// Contains reports whether a sequence or mapping holds a value equal to v.
func (y *Node) Contains(v *Node) bool {
	for _, x := range y.Values {
		if Equal(x, v) {
			return true
		}
	}
	return false
}

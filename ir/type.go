package ir

import "fmt"

// Type is the kind of a Node.  The set of types is closed; code switching
// on a Type is expected to handle each of them.
type Type int

const (
	ScalarType Type = iota
	SequenceType
	MappingType
	LiteralBlockScalarType
	FoldedBlockScalarType
)

var typeNames = [...]string{
	ScalarType:             "Scalar",
	SequenceType:           "Sequence",
	MappingType:            "Mapping",
	LiteralBlockScalarType: "LiteralBlockScalar",
	FoldedBlockScalarType:  "FoldedBlockScalar",
}

// Types lists every node type in declaration order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range typeNames {
		res[i] = Type(i)
	}
	return res
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if typeNames[tt] == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// IsScalar is true for the types holding a single string value.
func (t Type) IsScalar() bool {
	switch t {
	case ScalarType, LiteralBlockScalarType, FoldedBlockScalarType:
		return true
	default:
		return false
	}
}

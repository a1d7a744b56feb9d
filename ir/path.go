package ir

import (
	"strconv"
	"strings"
)

// Path returns a JSONPath style path of y from its root, such as
// "$.a_mapping.items[2]".  Fields which are not simple names are quoted.
func (y *Node) Path() string {
	var segs []string
	for n := y; n.Parent != nil; n = n.Parent {
		segs = append(segs, n.segment())
	}
	var b strings.Builder
	b.WriteByte('$')
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteString(segs[i])
	}
	return b.String()
}

func (y *Node) segment() string {
	switch y.Parent.Type {
	case MappingType:
		f := y.ParentField
		if f != "" && !strings.ContainsAny(f, "'.*$[] ") {
			return "." + f
		}
		return ".'" + strings.ReplaceAll(f, "'", `\'`) + "'"
	case SequenceType:
		return "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

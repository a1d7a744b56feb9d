package ir

// Truth is false for empty collections, empty strings and the plain
// scalars null, ~ and false.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case MappingType, SequenceType:
		return len(node.Values) != 0
	case LiteralBlockScalarType, FoldedBlockScalarType:
		return node.String != ""
	case ScalarType:
		if node.Style == PlainStyle {
			switch node.String {
			case "null", "~", "false":
				return false
			}
		}
		return node.String != ""
	default:
		panic("type")
	}
}

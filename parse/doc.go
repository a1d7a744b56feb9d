// Package parse reads line oriented YAML into IR nodes.
//
// # Usage
//
//	// Parse a document
//	node, err := parse.Parse([]byte("name: alice\nroles:\n  - admin\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Classify lines which were already split
//	node, err := parse.ToNode(lines, prev, false)
//
// The structure of a block is decided by its first significant line and by
// the line preceding it, which may end in a block indicator ("|", ">" or
// "|-").  Only block style YAML is read: flow collections, anchors, tags
// and multi document streams are not.
//
// # Related Packages
//
//   - github.com/tony-format/yamline/line - source lines
//   - github.com/tony-format/yamline/ir - IR representation
//   - github.com/tony-format/yamline/encode - Encode IR to text
package parse

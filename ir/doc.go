// Package ir provides the node tree of YAML documents.
//
// # Node Types
//
// A Node is a tagged union over a closed set of types:
//
//   - ScalarType: a single line value in String
//   - LiteralBlockScalarType: a "|" block, lines joined by newlines in String
//   - FoldedBlockScalarType: a ">" block, folded value in String
//   - SequenceType: ordered Values
//   - MappingType: keys in Fields, the value for Fields[i] at Values[i]
//
// Mappings keep source order and may hold repeated keys; resolving them is
// left to callers.  Keys are compared by value.
//
// # Styles
//
// Scalars carry a ScalarStyle recording whether they were written plain or
// quoted, so that printing a parsed document reproduces its quoting.
// Scalars built with FromString have AutoStyle and are quoted by the
// encoder only when needed.
//
// # Creating Nodes
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("tags"), Val: ir.FromSlice([]*ir.Node{
//	        ir.FromString("a"),
//	    })},
//	})
//
// # Related Packages
//
//   - github.com/tony-format/yamline/parse - parses lines into nodes
//   - github.com/tony-format/yamline/encode - prints nodes as YAML or JSON
package ir

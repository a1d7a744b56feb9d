// Package line provides the line model the YAML classifier works on.
//
// # Lines
//
// A Line is an immutable pair of raw text and its 0-based position in the
// source. The text keeps its leading whitespace so a document can be
// reconstructed exactly:
//
//	ls := line.Split(data)
//	for i, ln := range ls.All() {
//	    fmt.Println(i, ln.Number(), ln.Indent(), ln.Text())
//	}
//
// A nil *Line stands for "no previous line", the context of a document
// start. Its Number is -1.
//
// # Blocks
//
// Lines is an ordered collection in insertion order. Block and BlockEnd
// compute which lines are nested under a given line by indentation, which is
// how readers find the lines a mapping value or sequence item owns.
//
// # Related Packages
//
//   - github.com/tony-format/yamline/parse - classifies Lines into nodes
//   - github.com/tony-format/yamline/ir - the node tree
package line

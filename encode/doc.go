// Package encode renders IR nodes as block style YAML or as JSON.
//
// # Usage
//
//	// Encode to a writer
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode as JSON
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
//	// Print a document with markers, closing the target
//	p := encode.NewPrinter(f)
//	err := p.Print(node)
//
// Scalars are written according to their style: plain and quoted scalars
// as they were read, and scalars without a style through token.Escape.
//
// # Related Packages
//
//   - github.com/tony-format/yamline/ir - IR representation
//   - github.com/tony-format/yamline/parse - Parse text into IR
package encode

// Package format names the output formats of the encoder.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = encode.Encode(node, w, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/tony-format/yamline/encode - Encode IR to text
package format

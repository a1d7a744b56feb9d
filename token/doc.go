// Package token provides the lexical rules of line oriented YAML.
//
// [IndicatorOf] finds the block indicator a line ends with, which decides how
// the lines nested under it are read.
//
// [SplitKey] finds the key separator of a mapping entry.
//
// [Escape] quotes scalar values so that printed text is valid YAML.
package token

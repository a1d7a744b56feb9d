package encode

import (
	"bytes"
	"strings"

	"github.com/tony-format/yamline/ir"
)

// MustString renders node without trailing newline, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\r\n")
}

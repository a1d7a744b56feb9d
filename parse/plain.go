package parse

import (
	"strings"

	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/token"
)

// readPlain reads a one line scalar.  Outer quotes are removed and recorded
// as the style; nothing inside them is unescaped.
func readPlain(text string) *ir.Node {
	v, q := token.Unquote(strings.TrimSpace(text))
	return ir.FromStyled(v, ir.StyleOf(q))
}

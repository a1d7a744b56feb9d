package encode

import (
	"io"
	"runtime"
	"strings"

	"github.com/tony-format/yamline/ir"
)

// EOL is the line terminator of the platform.
var EOL = eolFor(runtime.GOOS)

func eolFor(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Printer prints one document, between "---" and "..." markers, to a target
// which it then closes.  A Printer is not safe for concurrent use.
type Printer struct {
	w      io.WriteCloser
	opts   []EncodeOption
	closed bool
}

// NewPrinter returns a printer to w.  Lines end with EOL unless opts say
// otherwise.
func NewPrinter(w io.WriteCloser, opts ...EncodeOption) *Printer {
	return &Printer{
		w:    w,
		opts: append([]EncodeOption{EncodeEOL(EOL)}, opts...),
	}
}

// Print writes node and closes the target, whether or not writing
// succeeded.  Any later call returns an *IOError wrapping ErrStreamClosed.
func (p *Printer) Print(node *ir.Node) (err error) {
	if p.closed {
		return &IOError{Op: "print", Err: ErrStreamClosed}
	}
	p.closed = true
	defer func() {
		if cerr := p.w.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Err: cerr}
		}
	}()
	es := newEncState(p.opts)
	lines, err := es.render(node)
	if err != nil {
		return err
	}
	doc := make([]string, 0, len(lines)+2)
	doc = append(doc, "---")
	doc = append(doc, lines...)
	doc = append(doc, "...")
	// the terminator separates lines, nothing follows "..."
	if _, err := io.WriteString(p.w, strings.Join(doc, es.eol)); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

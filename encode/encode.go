package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tony-format/yamline/format"
	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/token"
)

type EncState struct {
	indent int
	format format.Format
	eol    string

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
		eol:    "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w followed by a line terminator.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	lines, err := es.render(node)
	if err != nil {
		return err
	}
	return writeLines(w, lines, es.eol)
}

func (es *EncState) render(node *ir.Node) ([]string, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.format.IsJSON() {
		b := &strings.Builder{}
		if err := es.json(b, node, 0); err != nil {
			return nil, err
		}
		return strings.Split(b.String(), "\n"), nil
	}
	return es.yaml(node)
}

func writeLines(w io.Writer, lines []string, eol string) error {
	b := &strings.Builder{}
	for _, ln := range lines {
		b.WriteString(ln)
		b.WriteString(eol)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(t, a, s)
}

// yaml renders y at indentation 0.
func (es *EncState) yaml(y *ir.Node) ([]string, error) {
	switch y.Type {
	case ir.SequenceType:
		if len(y.Values) == 0 {
			return []string{es.color(y.Type, SepColor, "[]")}, nil
		}
		dash := es.color(y.Type, SepColor, "-")
		res := []string{}
		for _, v := range y.Values {
			inline, body, err := es.value(v)
			if err != nil {
				return nil, err
			}
			switch {
			case isCollection(v) && body != nil:
				res = append(res, dash+" "+body[0])
				res = append(res, indent(body[1:], 2)...)
			case inline == "":
				res = append(res, dash)
				res = append(res, indent(body, es.indent)...)
			default:
				res = append(res, dash+" "+inline)
				res = append(res, indent(body, es.indent)...)
			}
		}
		return res, nil
	case ir.MappingType:
		if len(y.Fields) == 0 {
			return []string{es.color(y.Type, SepColor, "{}")}, nil
		}
		colon := es.color(y.Type, SepColor, ":")
		res := []string{}
		for i, f := range y.Fields {
			k := es.color(y.Type, FieldColor, scalarText(f))
			inline, body, err := es.value(y.Values[i])
			if err != nil {
				return nil, err
			}
			if inline == "" {
				res = append(res, k+colon)
			} else {
				res = append(res, k+colon+" "+inline)
			}
			res = append(res, indent(body, es.indent)...)
		}
		return res, nil
	default:
		inline, body, err := es.value(y)
		if err != nil {
			return nil, err
		}
		return append([]string{inline}, indent(body, es.indent)...), nil
	}
}

// value splits the rendering of y inside a collection into the part on
// the line of its key or dash and the unindented lines below it.
func (es *EncState) value(y *ir.Node) (string, []string, error) {
	switch y.Type {
	case ir.ScalarType:
		if y.Style == ir.AutoStyle && strings.Contains(y.String, "\n") {
			return es.block(ir.LiteralBlockScalarType, "|", strings.Split(y.String, "\n"))
		}
		return es.color(y.Type, ValueColor, scalarText(y)), nil, nil
	case ir.LiteralBlockScalarType:
		return es.block(y.Type, "|", blockLines(y))
	case ir.FoldedBlockScalarType:
		if y.Lines == nil {
			return es.block(ir.LiteralBlockScalarType, "|", blockLines(y))
		}
		return es.block(y.Type, ">", y.Lines)
	case ir.SequenceType, ir.MappingType:
		body, err := es.yaml(y)
		if err != nil {
			return "", nil, err
		}
		if len(y.Values) == 0 {
			return body[0], nil, nil
		}
		return "", body, nil
	default:
		return "", nil, fmt.Errorf("%w: unknown node type %s", ErrEncoding, y.Type)
	}
}

func (es *EncState) block(t ir.Type, ind string, lines []string) (string, []string, error) {
	body := make([]string, len(lines))
	for i, ln := range lines {
		body[i] = es.color(t, LiteralColor, ln)
	}
	return es.color(t, IndicatorColor, ind), body, nil
}

func blockLines(y *ir.Node) []string {
	if y.Lines != nil {
		return y.Lines
	}
	if y.String == "" {
		return nil
	}
	return strings.Split(y.String, "\n")
}

func isCollection(y *ir.Node) bool {
	return y.Type == ir.SequenceType || y.Type == ir.MappingType
}

// scalarText returns y as it is written in YAML, ignoring multiple lines.
func scalarText(y *ir.Node) string {
	switch y.Style {
	case ir.PlainStyle:
		return y.String
	case ir.SingleQuotedStyle, ir.DoubleQuotedStyle:
		q := string(y.Style.Quote())
		return q + y.String + q
	default:
		return token.Escape(y.String)
	}
}

func indent(lines []string, n int) []string {
	if len(lines) == 0 {
		return nil
	}
	pad := strings.Repeat(" ", n)
	res := make([]string, len(lines))
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		res[i] = pad + ln
	}
	return res
}

func (es *EncState) json(b *strings.Builder, y *ir.Node, depth int) error {
	pad := func(d int) {
		b.WriteString(strings.Repeat(" ", d*es.indent))
	}
	switch y.Type {
	case ir.MappingType:
		if len(y.Fields) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		for i, f := range y.Fields {
			pad(depth + 1)
			b.WriteString(jsonString(f.String))
			b.WriteString(": ")
			if err := es.json(b, y.Values[i], depth+1); err != nil {
				return err
			}
			if i < len(y.Fields)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		pad(depth)
		b.WriteByte('}')
	case ir.SequenceType:
		if len(y.Values) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for i, v := range y.Values {
			pad(depth + 1)
			if err := es.json(b, v, depth+1); err != nil {
				return err
			}
			if i < len(y.Values)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		pad(depth)
		b.WriteByte(']')
	case ir.ScalarType, ir.LiteralBlockScalarType, ir.FoldedBlockScalarType:
		b.WriteString(jsonScalar(y))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, y.Type)
	}
	return nil
}

// jsonScalar writes plain scalars which read as JSON literals as such and
// everything else as a string.
func jsonScalar(y *ir.Node) string {
	if y.Type != ir.ScalarType || y.Style != ir.PlainStyle {
		return jsonString(y.String)
	}
	switch v := y.String; v {
	case "", "~", "null":
		return "null"
	case "true", "false":
		return v
	default:
		if (v[0] == '-' || v[0] >= '0' && v[0] <= '9') && json.Valid([]byte(v)) {
			return v
		}
		return jsonString(v)
	}
}

func jsonString(s string) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

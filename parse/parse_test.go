package parse

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
)

func lines(texts ...string) line.Lines {
	ls := make([]*line.Line, len(texts))
	for i, t := range texts {
		ls[i] = line.New(t, i)
	}
	return line.NewLines(ls...)
}

// guessModes runs f with indentation guessing off and on; the construct
// chosen must not depend on it.
func guessModes(t *testing.T, f func(t *testing.T, guess bool)) {
	for _, guess := range []bool{false, true} {
		t.Run(fmt.Sprintf("guess=%t", guess), func(t *testing.T) { f(t, guess) })
	}
}

func TestLiteralIndicatorWins(t *testing.T) {
	prevs := []string{"key: |", "- |", "|", "--- |", "\"q: k\": |"}
	bodies := []line.Lines{
		lines("  a: b", "  c: d"),
		lines("  - a", "  - b"),
		lines("  plain"),
		lines("  arn:a:b"),
		lines(),
	}
	guessModes(t, func(t *testing.T, guess bool) {
		for _, p := range prevs {
			for _, body := range bodies {
				y, err := ToNode(body, line.New(p, 0), guess)
				if err != nil {
					t.Fatalf("%q: %v", p, err)
				}
				if y.Type != ir.LiteralBlockScalarType {
					t.Errorf("%q over %q: got %s", p, body.String(), y.Type)
				}
			}
		}
	})
}

func TestLiteral(t *testing.T) {
	y, err := ToNode(lines("    first", "", "      indented", "    # kept", "    last", ""), line.New("text: |", 0), false)
	if err != nil {
		t.Fatal(err)
	}
	want := "first\n\n  indented\n# kept\nlast"
	if y.String != want {
		t.Errorf("got %q want %q", y.String, want)
	}
	if diff := cmp.Diff([]string{"first", "", "  indented", "# kept", "last"}, y.Lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestFolded(t *testing.T) {
	tests := []struct {
		in   line.Lines
		want string
	}{
		{lines("  a", "  b"), "a b"},
		{lines("  a", "", "  b"), "a\nb"},
		{lines("  a", "    more", "  b"), "a\n  more\nb"},
		{lines(), ""},
	}
	for _, tt := range tests {
		y, err := ToNode(tt.in, line.New("k: >", 0), false)
		if err != nil {
			t.Fatal(err)
		}
		if y.Type != ir.FoldedBlockScalarType {
			t.Errorf("type %s", y.Type)
		}
		if y.String != tt.want {
			t.Errorf("folding %q: got %q want %q", tt.in.String(), y.String, tt.want)
		}
	}
}

func TestCompactSequence(t *testing.T) {
	want := ir.FromSlice([]*ir.Node{
		ir.FromStyled("value1", ir.PlainStyle),
		ir.FromStyled("value2", ir.PlainStyle),
		ir.FromStyled("value3", ir.PlainStyle),
	})
	guessModes(t, func(t *testing.T, guess bool) {
		for _, p := range []string{"values: |-", "values: | -"} {
			y, err := ToNode(lines("  value1", "  value2", "  value3"), line.New(p, 3), guess)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(want, y) {
				t.Errorf("%q: got %v", p, y.Values)
			}
		}
	})
}

func TestCompactSequenceKeepsHashValues(t *testing.T) {
	want := []string{"v1", "#v2", "v3: x", "- v4"}
	guessModes(t, func(t *testing.T, guess bool) {
		y, err := ToNode(lines("  v1", "  #v2", "", "  v3: x", "  - v4"), line.New("k: |-", 0), guess)
		if err != nil {
			t.Fatal(err)
		}
		got := []string{}
		for _, v := range y.Values {
			got = append(got, v.String)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("values (-want +got):\n%s", diff)
		}
	})
	y, err := ParseString("k: |-\n  v1\n  #v2\n")
	if err != nil {
		t.Fatal(err)
	}
	if vals := ir.Get(y, "k").Values; len(vals) != 2 || vals[1].String != "#v2" {
		t.Errorf("got %v", vals)
	}
}

func TestSingleLineScalars(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		style ir.ScalarStyle
	}{
		{"arn:something:something", "arn:something:something", ir.PlainStyle},
		{"arn:aws:s3: bucket", "arn:aws:s3: bucket", ir.PlainStyle},
		{"a:b: c", "a:b: c", ir.PlainStyle},
		{"-foo", "-foo", ir.PlainStyle},
		{"  plain text  ", "plain text", ir.PlainStyle},
		{`"a:b"`, "a:b", ir.DoubleQuotedStyle},
		{`'single'`, "single", ir.SingleQuotedStyle},
		{"http://example.com", "http://example.com", ir.PlainStyle},
		{"http://example.com: site", "http://example.com: site", ir.PlainStyle},
	}
	guessModes(t, func(t *testing.T, guess bool) {
		for _, tt := range tests {
			y, err := ToNode(lines(tt.in), nil, guess)
			if err != nil {
				t.Fatalf("%q: %v", tt.in, err)
			}
			if y.Type != ir.ScalarType || y.String != tt.want || y.Style != tt.style {
				t.Errorf("%q: got %s %q %s", tt.in, y.Type, y.String, y.Style)
			}
		}
	})
}

func TestSingleLineColonCollections(t *testing.T) {
	tests := []struct {
		in  string
		typ ir.Type
		key string
	}{
		{"a: b:c", ir.MappingType, "a"},
		{"a:", ir.MappingType, "a"},
		{`"a:b": c`, ir.MappingType, "a:b"},
		{"- a:b", ir.SequenceType, ""},
	}
	guessModes(t, func(t *testing.T, guess bool) {
		for _, tt := range tests {
			y, err := ToNode(lines(tt.in), nil, guess)
			if err != nil {
				t.Fatalf("%q: %v", tt.in, err)
			}
			if y.Type != tt.typ {
				t.Fatalf("%q: got %s", tt.in, y.Type)
			}
			if tt.key != "" && ir.Get(y, tt.key) == nil {
				t.Errorf("%q: keys %v", tt.in, y.Keys())
			}
			if tt.typ == ir.SequenceType && y.Values[0].String != "a:b" {
				t.Errorf("%q: item %q", tt.in, y.Values[0].String)
			}
		}
	})
}

func TestMappingDetection(t *testing.T) {
	guessModes(t, func(t *testing.T, guess bool) {
		y, err := ToNode(lines("some: mapping", "for: test"), nil, guess)
		if err != nil {
			t.Fatal(err)
		}
		if y.Type != ir.MappingType {
			t.Fatalf("type %s", y.Type)
		}
		if diff := cmp.Diff([]string{"some", "for"}, y.Keys()); diff != "" {
			t.Errorf("keys (-want +got):\n%s", diff)
		}
	})
}

func TestSequenceDetection(t *testing.T) {
	guessModes(t, func(t *testing.T, guess bool) {
		y, err := ToNode(lines("- some", "- sequence"), nil, guess)
		if err != nil {
			t.Fatal(err)
		}
		if y.Type != ir.SequenceType || len(y.Values) != 2 {
			t.Fatalf("got %s with %d values", y.Type, len(y.Values))
		}
		if y.Values[1].String != "sequence" {
			t.Errorf("second value %q", y.Values[1].String)
		}
	})
}

func TestStructureError(t *testing.T) {
	guessModes(t, func(t *testing.T, guess bool) {
		_, err := ToNode(lines("this", "is", "not", "structured", "text"), nil, guess)
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
		msg := err.Error()
		for _, s := range []string{"Could not parse YAML starting at line 1", "but it has 5 lines"} {
			if !strings.Contains(msg, s) {
				t.Errorf("message %q lacks %q", msg, s)
			}
		}
		pe := &ParseError{}
		if !errors.As(err, &pe) || pe.Line != 1 || pe.Lines != 5 {
			t.Errorf("bad ParseError %+v", pe)
		}
		_, err = ToNode(lines("a", "b"), line.New("key:", 6), guess)
		if err == nil || !strings.Contains(err.Error(), "starting at line 8") {
			t.Errorf("got %v", err)
		}
	})
}

func TestEmpty(t *testing.T) {
	_, err := ToNode(lines("", "# only a comment"), nil, false)
	if !errors.Is(err, ErrEmpty) || !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestNested(t *testing.T) {
	y, err := ParseString(`name: app
"quoted: key": 'v'
items:
- id: 1
  tags:
    - a
    - b
-
  id: 2
- - x
  - y
script: |
  echo hi
  exit 0
empty:
desc: >
  one
  two
`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":        "app",
		"quoted: key": "v",
		"items": []any{
			map[string]any{"id": 1, "tags": []any{"a", "b"}},
			map[string]any{"id": 2},
			[]any{"x", "y"},
		},
		"script": "echo hi\nexit 0",
		"empty":  nil,
		"desc":   "one two",
	}
	if diff := cmp.Diff(want, ir.ToAny(y)); diff != "" {
		t.Errorf("document (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name", "quoted: key", "items", "script", "empty", "desc"}, y.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if y.Fields[1].Style != ir.DoubleQuotedStyle || y.Values[1].Style != ir.SingleQuotedStyle {
		t.Errorf("styles not kept: %s %s", y.Fields[1].Style, y.Values[1].Style)
	}
}

func TestDocumentMarkers(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"---\na: 1\n...\n", map[string]any{"a": 1}},
		{"--- |\n  line one\n  line two\n", "line one\nline two"},
		{"---\n|\n  x\n", "x"},
		{"# leading\n---\n- a\n", []any{"a"}},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, ir.ToAny(y)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestBadIndentation(t *testing.T) {
	in := lines("    a: 1", "  b: 2")
	if _, err := ToNode(in, nil, false); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	y, err := ToNode(in, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, y.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	y, err = ParseString("  - a\n- b\n", GuessIndentation(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(y.Values) != 2 {
		t.Errorf("expected 2 items, got %d", len(y.Values))
	}
}

func TestErrors(t *testing.T) {
	tests := []string{
		"a: 1\n- b\n",
		"- a\nb: 1\n",
		"a: 1\n  b: 2\n",
		"'unterminated: 1\nb: 2\n",
	}
	for _, in := range tests {
		_, err := ParseString(in)
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", in, err)
		}
	}
}

func TestParentLinks(t *testing.T) {
	y, err := ParseString("a:\n  - x\n  - y\n")
	if err != nil {
		t.Fatal(err)
	}
	x := ir.Get(y, "a").Values[1]
	if x.Path() != "$.a[1]" {
		t.Errorf("path %s", x.Path())
	}
}

package line

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func numbers(ls Lines) []int {
	res := []int{}
	for _, ln := range ls.All() {
		res = append(res, ln.Number())
	}
	return res
}

func texts(ls Lines) []string {
	res := []string{}
	for _, ln := range ls.All() {
		res = append(res, ln.Text())
	}
	return res
}

func TestIteratesInOrder(t *testing.T) {
	ls := NewLines(
		New("first: ", 0),
		New("  - fourth", 1),
		New("  - fifth", 2),
		New("second: something", 3),
		New("third: somethingElse", 4),
	)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, numbers(ls)); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if ls.Len() != 5 {
		t.Errorf("expected 5 lines, got %d", ls.Len())
	}
}

func TestIterationStops(t *testing.T) {
	ls := NewLines(New("a", 0), New("b", 1), New("c", 2))
	seen := 0
	for i := range ls.All() {
		seen++
		if i == 1 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("expected to stop after 2 lines, saw %d", seen)
	}
}

func TestNilLine(t *testing.T) {
	var ln *Line
	if ln.Number() != -1 {
		t.Errorf("nil line number: %d", ln.Number())
	}
	if ln.Text() != "" {
		t.Errorf("nil line text: %q", ln.Text())
	}
	if ln.Number()+2 != 1 {
		t.Errorf("nil line should start documents at line 1")
	}
}

func TestLineAccessors(t *testing.T) {
	tests := []struct {
		text        string
		indent      int
		trimmed     string
		significant bool
		dash        bool
	}{
		{"key: value", 0, "key: value", true, false},
		{"    - item", 4, "- item", true, true},
		{"  -", 2, "-", true, true},
		{"  -foo", 2, "-foo", true, false},
		{"   ", 3, "", false, false},
		{"  # comment", 2, "# comment", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ln := New(tt.text, 7)
			if ln.Indent() != tt.indent {
				t.Errorf("indent: want %d got %d", tt.indent, ln.Indent())
			}
			if ln.Trimmed() != tt.trimmed {
				t.Errorf("trimmed: want %q got %q", tt.trimmed, ln.Trimmed())
			}
			if ln.Significant() != tt.significant {
				t.Errorf("significant: want %t", tt.significant)
			}
			if ln.IsDashItem() != tt.dash {
				t.Errorf("dash item: want %t", tt.dash)
			}
			if ln.String() != tt.text {
				t.Errorf("string: want %q got %q", tt.text, ln.String())
			}
		})
	}
}

func TestSplit(t *testing.T) {
	ls := Split([]byte("a: 1\r\nb:\n  - x\n\n  - y\n"))
	want := []string{"a: 1", "b:", "  - x", "", "  - y"}
	if diff := cmp.Diff(want, texts(ls)); diff != "" {
		t.Errorf("split (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, numbers(ls)); diff != "" {
		t.Errorf("numbers (-want +got):\n%s", diff)
	}
	if Split(nil).Len() != 0 {
		t.Errorf("expected empty split")
	}
}

func TestBlock(t *testing.T) {
	ls := Split([]byte(`a:
  b: 1

  c:
    - x
d: 2
e:
- y
- z
f: 3
`))
	if diff := cmp.Diff([]string{"  b: 1", "", "  c:", "    - x"}, texts(ls.Block(0, false))); diff != "" {
		t.Errorf("block a (-want +got):\n%s", diff)
	}
	if got := ls.Block(5, false).Len(); got != 0 {
		t.Errorf("block d: expected empty, got %d", got)
	}
	if diff := cmp.Diff([]string{"- y", "- z"}, texts(ls.Block(6, true))); diff != "" {
		t.Errorf("block e (-want +got):\n%s", diff)
	}
	if got := ls.Block(6, false).Len(); got != 0 {
		t.Errorf("block e without sequences: expected empty, got %d", got)
	}
}

func TestBlockTrailingBlank(t *testing.T) {
	ls := Split([]byte("a:\n  b\n\n\nc: 1"))
	if end := ls.BlockEnd(0, false); end != 4 {
		t.Errorf("block end: want 4 got %d", end)
	}
	if diff := cmp.Diff([]string{"  b"}, texts(ls.Block(0, false))); diff != "" {
		t.Errorf("block (-want +got):\n%s", diff)
	}
}

func TestSignificant(t *testing.T) {
	ls := Split([]byte("# head\n\nkey: v\n  # inner\nother: w"))
	if diff := cmp.Diff([]string{"key: v", "other: w"}, texts(ls.Significant())); diff != "" {
		t.Errorf("significant (-want +got):\n%s", diff)
	}
	if ls.First() != 2 || ls.BaseIndent() != 0 {
		t.Errorf("first %d base %d", ls.First(), ls.BaseIndent())
	}
	if (Lines{}).BaseIndent() != -1 {
		t.Errorf("empty base indent should be -1")
	}
}

func TestSliceIsCopy(t *testing.T) {
	ls := NewLines(New("a", 0))
	s := ls.Slice()
	s[0] = New("b", 1)
	if ls.At(0).Text() != "a" {
		t.Errorf("collection mutated through Slice")
	}
}

func TestBlockComments(t *testing.T) {
	ls := Split([]byte(`a:
  b: 1
# between
  c: 2
# after
d: 3`))
	if diff := cmp.Diff([]string{"  b: 1", "# between", "  c: 2"}, texts(ls.Block(0, false))); diff != "" {
		t.Errorf("block (-want +got):\n%s", diff)
	}
}

func TestBlockEndFrom(t *testing.T) {
	ls := Split([]byte("    b: 1\n  c: 2\n    d: 3\ne: 4"))
	if end := ls.BlockEndFrom(1, 4, false); end != 2 {
		t.Errorf("rebased block end: want 2 got %d", end)
	}
	if end := ls.BlockEnd(1, false); end != 3 {
		t.Errorf("block end: want 3 got %d", end)
	}
}

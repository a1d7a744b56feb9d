package line

import (
	"iter"
	"strings"
)

// Lines is an ordered, immutable collection of lines. The zero value is an
// empty collection.
type Lines struct {
	lines []*Line
}

// NewLines returns a collection holding ls in the given order.
func NewLines(ls ...*Line) Lines {
	return Lines{lines: append([]*Line(nil), ls...)}
}

func (ls Lines) Len() int {
	return len(ls.lines)
}

func (ls Lines) At(i int) *Line {
	return ls.lines[i]
}

// All yields the lines with their index in insertion order.
func (ls Lines) All() iter.Seq2[int, *Line] {
	return func(yield func(int, *Line) bool) {
		for i, ln := range ls.lines {
			if !yield(i, ln) {
				return
			}
		}
	}
}

// Slice returns a copy of the underlying lines.
func (ls Lines) Slice() []*Line {
	return append([]*Line(nil), ls.lines...)
}

// Sub returns the lines in [from, to).
func (ls Lines) Sub(from, to int) Lines {
	return Lines{lines: ls.lines[from:to:to]}
}

// Append returns a new collection with more appended after ls.
func (ls Lines) Append(more Lines) Lines {
	res := make([]*Line, 0, len(ls.lines)+len(more.lines))
	res = append(res, ls.lines...)
	return Lines{lines: append(res, more.lines...)}
}

// Significant returns the lines which are neither blank nor comments.
func (ls Lines) Significant() Lines {
	res := make([]*Line, 0, len(ls.lines))
	for _, ln := range ls.lines {
		if ln.Significant() {
			res = append(res, ln)
		}
	}
	return Lines{lines: res}
}

// First returns the index of the first significant line, or -1.
func (ls Lines) First() int {
	for i, ln := range ls.lines {
		if ln.Significant() {
			return i
		}
	}
	return -1
}

// BaseIndent is the indentation of the first significant line, or -1 if
// there is none.
func (ls Lines) BaseIndent() int {
	i := ls.First()
	if i == -1 {
		return -1
	}
	return ls.lines[i].Indent()
}

// BlockEnd returns the end (exclusive) of the lines nested under line i:
// the lines after i up to the first non blank line which is not more
// indented than line i.  When sameIndentSeq is true and the first nested
// line is a sequence entry at the indentation of line i, sequence entries at
// that indentation (and their own nested lines) are also part of the block.
func (ls Lines) BlockEnd(i int, sameIndentSeq bool) int {
	return ls.BlockEndFrom(i, ls.lines[i].Indent(), sameIndentSeq)
}

// BlockEndFrom is BlockEnd with the indentation of line i given as base.
// Comment lines which are not more indented than base belong to the block
// when the next significant line does.
func (ls Lines) BlockEndFrom(i, base int, sameIndentSeq bool) int {
	n := len(ls.lines)
	seq := false
	if sameIndentSeq {
		if k := ls.nextSignificant(i + 1); k < n {
			ln := ls.lines[k]
			seq = ln.Indent() == base && ln.IsDashItem()
		}
	}
	nested := func(ln *Line) bool {
		ind := ln.Indent()
		return ind > base || seq && ind == base && ln.IsDashItem()
	}
	j := i + 1
	for ; j < n; j++ {
		ln := ls.lines[j]
		if ln.IsBlank() || nested(ln) {
			continue
		}
		if ln.IsComment() {
			if k := ls.nextSignificant(j + 1); k < n && nested(ls.lines[k]) {
				continue
			}
		}
		break
	}
	return j
}

func (ls Lines) nextSignificant(from int) int {
	n := len(ls.lines)
	for k := from; k < n; k++ {
		if ls.lines[k].Significant() {
			return k
		}
	}
	return n
}

// Block returns the lines nested under line i with trailing blank lines
// removed.
func (ls Lines) Block(i int, sameIndentSeq bool) Lines {
	return ls.Sub(i+1, ls.BlockEnd(i, sameIndentSeq)).TrimBlank()
}

// TrimBlank drops trailing blank lines.
func (ls Lines) TrimBlank() Lines {
	n := len(ls.lines)
	for n > 0 && ls.lines[n-1].IsBlank() {
		n--
	}
	return ls.Sub(0, n)
}

// String joins the raw text of the lines with newlines.
func (ls Lines) String() string {
	parts := make([]string, len(ls.lines))
	for i, ln := range ls.lines {
		parts[i] = ln.Text()
	}
	return strings.Join(parts, "\n")
}

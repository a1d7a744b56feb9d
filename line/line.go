package line

import (
	"strings"
)

// Line is one line of YAML source.
type Line struct {
	text   string
	number int
}

func New(text string, number int) *Line {
	return &Line{text: text, number: number}
}

// Text returns the raw text, leading whitespace included.
func (l *Line) Text() string {
	if l == nil {
		return ""
	}
	return l.text
}

// Number returns the 0-based position of the line in its source, or -1 for
// the nil line.
func (l *Line) Number() int {
	if l == nil {
		return -1
	}
	return l.number
}

// Indent is the number of leading spaces.
func (l *Line) Indent() int {
	if l == nil {
		return -1
	}
	return len(l.text) - len(strings.TrimLeft(l.text, " "))
}

func (l *Line) Trimmed() string {
	return strings.TrimSpace(l.Text())
}

func (l *Line) IsBlank() bool {
	return l.Trimmed() == ""
}

func (l *Line) IsComment() bool {
	return strings.HasPrefix(l.Trimmed(), "#")
}

// Significant is true for lines which are neither blank nor comments.
func (l *Line) Significant() bool {
	t := l.Trimmed()
	return t != "" && t[0] != '#'
}

// IsDashItem reports whether the line is a block sequence entry, that is
// its trimmed text is "-" or starts with "- ".
func (l *Line) IsDashItem() bool {
	t := l.Trimmed()
	return t == "-" || strings.HasPrefix(t, "- ")
}

func (l *Line) String() string {
	return l.Text()
}

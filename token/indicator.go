package token

import "strings"

// Indicator is the block indicator ending a line.
type Indicator int

const (
	NoIndicator Indicator = iota
	// LiteralIndicator is "|": nested lines are kept verbatim.
	LiteralIndicator
	// FoldedIndicator is ">": nested lines are folded into one.
	FoldedIndicator
	// CompactSeqIndicator is "|-" or "| -": each nested line is one
	// sequence value, without dashes.
	CompactSeqIndicator
)

func (i Indicator) String() string {
	switch i {
	case LiteralIndicator:
		return "|"
	case FoldedIndicator:
		return ">"
	case CompactSeqIndicator:
		return "|-"
	default:
		return ""
	}
}

// ParseIndicator returns the indicator v consists of, ignoring surrounding
// whitespace.
func ParseIndicator(v string) Indicator {
	switch strings.TrimSpace(v) {
	case "|":
		return LiteralIndicator
	case ">":
		return FoldedIndicator
	case "|-", "| -":
		return CompactSeqIndicator
	default:
		return NoIndicator
	}
}

// IndicatorOf returns the indicator ending the line text.  The indicator is
// looked for after the last colon; lines without a colon are considered
// after a leading document marker or sequence dash.
func IndicatorOf(text string) Indicator {
	if i := strings.LastIndexByte(text, ':'); i != -1 {
		return ParseIndicator(text[i+1:])
	}
	t := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(t, "---"):
		t = t[3:]
	case t == "-", strings.HasPrefix(t, "- "):
		t = t[1:]
	}
	return ParseIndicator(t)
}

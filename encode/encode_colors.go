package encode

import (
	"github.com/tony-format/yamline/ir"

	"github.com/fatih/color"
)

// Colorable selects what a color applies to: a part of a node of a given
// type.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	IndicatorColor
	LiteralColor
)

type Colors struct {
	Default func(string) string
	Map     map[Colorable]*color.Color
}

type rgb [3]int

var palette = []struct {
	able Colorable
	rgb  rgb
}{
	{Colorable{ir.MappingType, FieldColor}, rgb{128, 168, 196}},
	{Colorable{ir.MappingType, SepColor}, rgb{196, 128, 128}},
	{Colorable{ir.SequenceType, SepColor}, rgb{255, 0, 196}},
	{Colorable{ir.ScalarType, ValueColor}, rgb{8, 196, 16}},
	{Colorable{ir.LiteralBlockScalarType, IndicatorColor}, rgb{74, 92, 138}},
	{Colorable{ir.LiteralBlockScalarType, LiteralColor}, rgb{198, 198, 46}},
	{Colorable{ir.FoldedBlockScalarType, IndicatorColor}, rgb{74, 92, 138}},
	{Colorable{ir.FoldedBlockScalarType, LiteralColor}, rgb{88, 158, 86}},
}

// NewColors returns the default palette.  Whether escapes are emitted
// follows color.NoColor at the time of rendering.
func NewColors() *Colors {
	c := &Colors{
		Default: func(s string) string { return s },
		Map:     make(map[Colorable]*color.Color, len(palette)),
	}
	for _, p := range palette {
		c.Map[p.able] = color.RGB(p.rgb[0], p.rgb[1], p.rgb[2])
	}
	return c
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	if col := c.Map[Colorable{Type: t, Attr: a}]; col != nil {
		return col.Sprint(s)
	}
	return c.Default(s)
}

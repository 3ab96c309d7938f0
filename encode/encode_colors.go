package encode

import (
	"github.com/signadot/ton-format/ton/ir"

	"github.com/fatih/color"
)

// Colorable names one painted part of the output: the attribute of a node
// of some type.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	// CommentColor paints header directive lines.
	CommentColor ColorAttr = iota
	// TagColor paints class names, instance counts and type hints.
	TagColor
	// FieldColor paints property names.
	FieldColor
	ValueColor
	// SepColor paints braces, brackets, colons and commas.
	SepColor
)

// Colors maps the parts of the output to terminal colors. Parts without an
// entry are written plain.
type Colors struct {
	Map map[Colorable]*color.Color
}

var (
	hintColor  = color.RGB(74, 92, 138)
	classColor = color.RGB(196, 168, 128)
	fieldColor = color.RGB(128, 168, 196)
	sepColor   = color.RGB(255, 0, 196)
	enumColor  = color.New(color.FgYellow)

	valueColors = map[ir.Type]*color.Color{
		ir.NullType:      color.RGB(168, 0, 196),
		ir.UndefinedType: color.RGB(120, 120, 120),
		ir.BoolType:      color.New(color.FgCyan),
		ir.NumberType:    color.RGB(128, 216, 236),
		ir.StringType:    color.RGB(8, 196, 16),
		ir.GUIDType:      color.RGB(216, 160, 64),
		ir.DateType:      color.RGB(216, 120, 160),
		ir.EnumType:      enumColor,
		ir.EnumSetType:   enumColor,
	}
)

// NewColors returns the default palette.
func NewColors() *Colors {
	c := &Colors{Map: map[Colorable]*color.Color{}}
	for _, t := range ir.Types() {
		c.Set(t, CommentColor, color.New(color.FgBlue))
		c.Set(t, TagColor, hintColor)
		c.Set(t, FieldColor, fieldColor)
		c.Set(t, SepColor, sepColor)
		if vc := valueColors[t]; vc != nil {
			c.Set(t, ValueColor, vc)
		}
	}
	c.Set(ir.ObjectType, TagColor, classColor)
	c.Set(ir.ObjectType, SepColor, color.RGB(196, 128, 128))
	return c
}

func (c *Colors) Set(t ir.Type, a ColorAttr, col *color.Color) {
	c.Map[Colorable{Type: t, Attr: a}] = col
}

func (c *Colors) Get(t ir.Type, a ColorAttr) *color.Color {
	return c.Map[Colorable{Type: t, Attr: a}]
}

// Color paints s as the attribute a of a node of type t.
func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	col := c.Get(t, a)
	if col == nil {
		return s
	}
	return col.Sprint(s)
}

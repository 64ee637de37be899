package encode

import (
	"github.com/fatih/color"

	"github.com/xmljson-format/go-xmljson/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ir.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	return colors
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

package encode

import (
	"github.com/fatih/color"

	"github.com/signadot/toml-query/ir"
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

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: FieldColor}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	able.Type = ir.IntegerType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.DatetimeType
	colors.Map[able] = color.MagentaString

	return colors
}

func (c *Colors) sprintf(t ir.Type, attr ColorAttr, f string, args ...any) string {
	fn, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		fn = c.Default
	}
	return fn(f, args...)
}

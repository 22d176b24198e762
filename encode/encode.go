// Package encode renders a document node as bracketed object notation,
// one entry per line by default, with optional per-type terminal colors.
package encode

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/toml-query/ir"
)

type Config struct {
	Color   bool
	Compact bool
	Colors  *Colors
}

type EncodeOption func(*Config)

func EncodeColor(v bool) EncodeOption {
	return func(c *Config) { c.Color = v }
}

func EncodeCompact(v bool) EncodeOption {
	return func(c *Config) { c.Compact = v }
}

func EncodeColors(colors *Colors) EncodeOption {
	return func(c *Config) { c.Colors = colors }
}

func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Colors == nil {
		cfg.Colors = NewColors()
	}
	e := &encoder{w: w, cfg: cfg}
	e.node(y, 0)
	e.write("\n")
	return e.err
}

type encoder struct {
	w   io.Writer
	cfg *Config
	err error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) sep(t ir.Type, s string) {
	if e.cfg.Color {
		s = e.cfg.Colors.sprintf(t, SepColor, "%s", s)
	}
	e.write(s)
}

func (e *encoder) field(t ir.Type, name string) {
	if e.cfg.Color {
		name = e.cfg.Colors.sprintf(t, FieldColor, "%s", name)
	}
	e.write(name)
}

func (e *encoder) scalar(y *ir.Node) {
	s := ScalarString(y)
	if e.cfg.Color {
		s = e.cfg.Colors.sprintf(y.Type, ValueColor, "%s", s)
	}
	e.write(s)
}

func (e *encoder) node(y *ir.Node, depth int) {
	switch y.Type {
	case ir.TableType:
		e.sep(y.Type, "{")
		keys := y.Keys()
		for i, k := range keys {
			e.entrySep(y.Type, i, depth)
			e.field(y.Type, k)
			e.sep(y.Type, " = ")
			e.node(y.Table[k], depth+1)
		}
		e.closeSep(y.Type, len(keys), depth)
		e.sep(y.Type, "}")
	case ir.ArrayType:
		e.sep(y.Type, "[")
		for i, v := range y.Values {
			e.entrySep(y.Type, i, depth)
			e.node(v, depth+1)
		}
		e.closeSep(y.Type, len(y.Values), depth)
		e.sep(y.Type, "]")
	default:
		e.scalar(y)
	}
}

func (e *encoder) entrySep(t ir.Type, i, depth int) {
	if e.cfg.Compact {
		if i > 0 {
			e.sep(t, ", ")
		}
		return
	}
	if i > 0 {
		e.sep(t, ",")
	}
	e.write("\n" + strings.Repeat("  ", depth+1))
}

func (e *encoder) closeSep(t ir.Type, n, depth int) {
	if e.cfg.Compact || n == 0 {
		return
	}
	e.write("\n" + strings.Repeat("  ", depth))
}

// ScalarString renders a leaf node as literal text. Containers yield
// their type name; use Encode for those.
func ScalarString(y *ir.Node) string {
	switch y.Type {
	case ir.StringType:
		return strconv.Quote(y.String)
	case ir.IntegerType:
		return strconv.FormatInt(y.Int, 10)
	case ir.FloatType:
		s := strconv.FormatFloat(y.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case ir.BoolType:
		return strconv.FormatBool(y.Bool)
	case ir.DatetimeType:
		return y.Time.Format(time.RFC3339Nano)
	default:
		return y.Type.String()
	}
}

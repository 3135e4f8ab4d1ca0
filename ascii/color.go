package ascii

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ColorKind tags which variant a Color holds.
type ColorKind uint8

const (
	KindNamed ColorKind = iota // One of the 16 terminal colors, or Reset.
	KindRGB                    // 24-bit truecolor.
	KindANSI                   // 256-color palette index.
)

// Named is a symbolic terminal color.
type Named uint8

const (
	Reset Named = iota
	Black
	DarkGrey
	Red
	DarkRed
	Green
	DarkGreen
	Yellow
	DarkYellow
	Blue
	DarkBlue
	Magenta
	DarkMagenta
	Cyan
	DarkCyan
	White
	Grey
	namedCount
)

var namedNames = [namedCount]string{
	"reset", "black", "dark_grey", "red", "dark_red", "green", "dark_green",
	"yellow", "dark_yellow", "blue", "dark_blue", "magenta", "dark_magenta",
	"cyan", "dark_cyan", "white", "grey",
}

// SGR foreground codes; the "light" names map to the bright range.
var namedAttrs = [namedCount]color.Attribute{
	39, color.FgBlack, color.FgHiBlack, color.FgHiRed, color.FgRed,
	color.FgHiGreen, color.FgGreen, color.FgHiYellow, color.FgYellow,
	color.FgHiBlue, color.FgBlue, color.FgHiMagenta, color.FgMagenta,
	color.FgHiCyan, color.FgCyan, color.FgHiWhite, color.FgWhite,
}

// Color is a closed variant: a named terminal color, an RGB triple or a
// 256-color index. The zero value is Reset.
type Color struct {
	kind    ColorKind
	named   Named
	r, g, b uint8
	index   uint8
}

// NamedColor returns the symbolic color n. Out-of-range values become Reset.
func NamedColor(n Named) Color {
	if n >= namedCount {
		n = Reset
	}
	return Color{kind: KindNamed, named: n}
}

// RGB returns a truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// ANSI returns a 256-color palette entry.
func ANSI(index uint8) Color {
	return Color{kind: KindANSI, index: index}
}

// Kind reports the variant.
func (c Color) Kind() ColorKind { return c.kind }

// Named returns the symbolic color; only meaningful for KindNamed.
func (c Color) Named() Named { return c.named }

// Components returns the RGB triple; only meaningful for KindRGB.
func (c Color) Components() (r, g, b uint8) { return c.r, c.g, c.b }

// Index returns the palette index; only meaningful for KindANSI.
func (c Color) Index() uint8 { return c.index }

// String returns the form ParseColor accepts.
func (c Color) String() string {
	switch c.kind {
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case KindANSI:
		return strconv.Itoa(int(c.index))
	default:
		return namedNames[c.named]
	}
}

// ParseColor accepts a color name ("dark_red", "DarkRed" and "fg" for
// Reset), a "#rrggbb" hex triple, or a decimal 256-color index.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 8 {
			// #rrggbbaa: alpha is dropped.
			hex = hex[:6]
		}
		if len(hex) != 6 {
			return Color{}, errors.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, errors.Errorf("invalid hex color %q", s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return ANSI(uint8(n)), nil
	}

	key := normalizeName(s)
	if key == "fg" {
		return NamedColor(Reset), nil
	}
	for i, name := range namedNames {
		if key == name {
			return NamedColor(Named(i)), nil
		}
	}
	return Color{}, errors.Errorf("unknown color %q", s)
}

// normalizeName folds "DarkRed", "dark-red", "dark red" and "DARK_RED" to
// "dark_red". A capital starts a new word only after a lower-case letter or
// digit, so runs of capitals stay together.
func normalizeName(s string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range s {
		switch {
		case r == '-' || r == ' ' || r == '_':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// UnmarshalYAML decodes a scalar through ParseColor.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: color must be a scalar", node.Line)
	}
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the ParseColor form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c Color) painter() *color.Color {
	switch c.kind {
	case KindRGB:
		return color.RGB(int(c.r), int(c.g), int(c.b))
	case KindANSI:
		return color.New(38, 5, color.Attribute(c.index))
	default:
		return color.New(namedAttrs[c.named])
	}
}

// Paint wraps text in this color's escape sequences. Output is plain when
// color is disabled (not a terminal, NO_COLOR set).
func (c Color) Paint(text string) string {
	return c.painter().Sprint(text)
}

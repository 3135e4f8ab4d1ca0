package ascii

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"prismfetch/config"
)

// Styled is a run of text and the color to print it in.
type Styled struct {
	Text  string
	Color Color
}

// String renders the run with its escape sequences.
func (s Styled) String() string {
	return s.Color.Paint(s.Text)
}

// Colorizer turns a compiled icon into styled output.
type Colorizer interface {
	Colorize(icon IconAsset) ([]Styled, error)
}

// NewColorizer picks the banding strategy when a scheme is given and the
// icon's own palette otherwise.
func NewColorizer(scheme *Scheme, orientation config.Orientation) (Colorizer, error) {
	if scheme == nil {
		return DirectColorizer{}, nil
	}
	if orientation == config.OrientationUnset {
		return nil, errors.WithMessagef(config.ErrMissingOrientation, "scheme %q", scheme.Name)
	}
	if len(scheme.Colors) == 0 {
		return nil, errors.Wrapf(ErrInvalidAsset, "scheme %q has no colors", scheme.Name)
	}
	return BandColorizer{Scheme: *scheme, Orientation: orientation}, nil
}

// DirectColorizer paints each segment with its own palette entry.
type DirectColorizer struct{}

// Colorize implements Colorizer. A segment index outside the palette can only
// come from a corrupt archive and is reported as such.
func (DirectColorizer) Colorize(icon IconAsset) ([]Styled, error) {
	out := make([]Styled, 0, len(icon.Segments))
	for i, seg := range icon.Segments {
		if seg.Index == 0 || int(seg.Index) > len(icon.Palette) {
			return nil, errors.Wrapf(ErrArchiveCorrupt, "segment %d uses color %d of %d", i, seg.Index, len(icon.Palette))
		}
		out = append(out, Styled{Text: seg.Text, Color: icon.Palette[seg.Index-1]})
	}
	return out, nil
}

// BandColorizer ignores the icon palette and paints stripes from a scheme,
// one per line (horizontal) or per column (vertical).
type BandColorizer struct {
	Scheme      Scheme
	Orientation config.Orientation
}

// Colorize implements Colorizer.
func (b BandColorizer) Colorize(icon IconAsset) ([]Styled, error) {
	if len(b.Scheme.Colors) == 0 {
		return nil, errors.Wrapf(ErrInvalidAsset, "scheme %q has no colors", b.Scheme.Name)
	}
	lines := splitLines(icon.Text())

	switch b.Orientation {
	case config.OrientationHorizontal:
		colors := Stripes(len(lines), b.Scheme.Colors)
		out := make([]Styled, 0, len(lines))
		for i, line := range lines {
			out = append(out, Styled{Text: line + "\n", Color: colors[i]})
		}
		return out, nil

	case config.OrientationVertical:
		if err := checkRectangular(lines, int(icon.Width)); err != nil {
			return nil, err
		}
		colors := Stripes(int(icon.Width), b.Scheme.Colors)
		out := make([]Styled, 0, len(lines)*(int(icon.Width)+1))
		for _, line := range lines {
			col := 0
			for _, r := range line {
				out = append(out, Styled{Text: string(r), Color: colors[col]})
				col++
			}
			out = append(out, Styled{Text: "\n", Color: NamedColor(Reset)})
		}
		return out, nil
	}
	return nil, errors.WithMessagef(config.ErrMissingOrientation, "scheme %q", b.Scheme.Name)
}

// checkRectangular enforces what vertical banding indexes by: at least one
// line, and every line exactly width runes.
func checkRectangular(lines []string, width int) error {
	if len(lines) == 0 || width == 0 {
		return errors.Wrap(ErrInvalidAsset, "vertical bands need non-empty art")
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return errors.Wrapf(ErrInvalidAsset, "vertical bands need rectangular art: line %d is %d columns, width is %d", i+1, n, width)
		}
	}
	return nil
}

// StripeWeights splits length cells over paletteLen colors. Every color gets
// length/paletteLen cells. An odd remainder gives the center color one more;
// the rest is handed out in pairs from both edges inward.
func StripeWeights(length, paletteLen int) []int {
	if paletteLen <= 0 {
		return nil
	}
	if length < 0 {
		length = 0
	}
	weights := make([]int, paletteLen)
	base := length / paletteLen
	for i := range weights {
		weights[i] = base
	}
	extra := length % paletteLen
	if extra%2 == 1 {
		weights[paletteLen/2]++
		extra--
	}
	for border := 0; extra > 0; border++ {
		weights[border]++
		weights[paletteLen-1-border]++
		extra -= 2
	}
	return weights
}

// Stripes expands StripeWeights into one color per cell.
func Stripes(length int, colors []Color) []Color {
	weights := StripeWeights(length, len(colors))
	out := make([]Color, 0, length)
	for i, w := range weights {
		for j := 0; j < w; j++ {
			out = append(out, colors[i])
		}
	}
	return out
}

// splitLines splits on newlines; a trailing newline does not start an
// extra empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Lines renders styled runs as terminal lines. Runs are cut at newlines and
// each piece is painted on its own, so no color is left open at a line end.
func Lines(parts []Styled) []string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, p := range parts {
		pieces := strings.Split(p.Text, "\n")
		for i, piece := range pieces {
			if i > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			if piece != "" {
				cur.WriteString(Styled{Text: piece, Color: p.Color}.String())
			}
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

package ascii

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// markerRe matches inline color markers such as ${c1}.
var markerRe = regexp.MustCompile(`\$\{c(\d*)\}`)

// Definition is one human-authored icon record.
type Definition struct {
	Names  []string `yaml:"names"`
	Colors []Color  `yaml:"colors"`
	Width  uint16   `yaml:"width"`
	Art    string   `yaml:"art"`
}

// ParseDefinitions decodes a YAML list of icon definitions.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Wrap(err, "parse icon definitions")
	}
	return defs, nil
}

// ParseSchemes decodes a TOML table of scheme name -> [[r, g, b], ...].
// The result is sorted by name.
func ParseSchemes(data []byte) ([]Scheme, error) {
	var raw map[string][][]int64
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(err, "parse color schemes")
	}

	schemes := make([]Scheme, 0, len(raw))
	for name, triples := range raw {
		if len(triples) == 0 {
			return nil, errors.Wrapf(ErrInvalidAsset, "scheme %q has no colors", name)
		}
		colors := make([]Color, 0, len(triples))
		for i, t := range triples {
			if len(t) != 3 {
				return nil, errors.Wrapf(ErrInvalidAsset, "scheme %q color %d: want 3 components, got %d", name, i, len(t))
			}
			for _, v := range t {
				if v < 0 || v > 255 {
					return nil, errors.Wrapf(ErrInvalidAsset, "scheme %q color %d: component %d out of range", name, i, v)
				}
			}
			colors = append(colors, RGB(uint8(t[0]), uint8(t[1]), uint8(t[2])))
		}
		schemes = append(schemes, Scheme{Name: strings.ToLower(name), Colors: colors})
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i].Name < schemes[j].Name })
	return schemes, nil
}

// CompileTemplate splits art on ${cN} markers. The marker numbers form the
// color stream, the text after each marker the chunk stream; anything before
// the first marker is dropped. Every N must be in 1..paletteLen.
func CompileTemplate(template string, paletteLen int) ([]Segment, error) {
	locs := markerRe.FindAllStringSubmatchIndex(template, -1)
	segs := make([]Segment, 0, len(locs))
	for i, loc := range locs {
		digits := template[loc[2]:loc[3]]
		n, err := strconv.ParseUint(digits, 10, 8)
		if err != nil || n == 0 || int(n) > paletteLen {
			return nil, errors.Wrapf(ErrInvalidAsset, "marker %q: palette has %d colors", template[loc[0]:loc[1]], paletteLen)
		}
		end := len(template)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segs = append(segs, Segment{Index: uint8(n), Text: template[loc[1]:end]})
	}
	return segs, nil
}

// Compile turns a definition into an asset. Aliases are lower-cased and
// deduplicated; art lines are right-padded to Width so the art is
// rectangular. A zero Width is taken from the widest line.
func Compile(def Definition) (IconAsset, error) {
	aliases := make([]string, 0, len(def.Names))
	seen := make(map[string]bool, len(def.Names))
	for _, n := range def.Names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		aliases = append(aliases, n)
	}
	if len(aliases) == 0 {
		return IconAsset{}, errors.Wrap(ErrInvalidAsset, "icon has no names")
	}
	if len(def.Colors) == 0 || len(def.Colors) > 255 {
		return IconAsset{}, errors.Wrapf(ErrInvalidAsset, "icon %q has %d colors", aliases[0], len(def.Colors))
	}

	art, width, err := padArt(def.Art, int(def.Width))
	if err != nil {
		return IconAsset{}, errors.WithMessagef(err, "icon %q", aliases[0])
	}
	segs, err := CompileTemplate(art, len(def.Colors))
	if err != nil {
		return IconAsset{}, errors.WithMessagef(err, "icon %q", aliases[0])
	}
	return IconAsset{
		Aliases:  aliases,
		Palette:  append([]Color(nil), def.Colors...),
		Width:    uint16(width),
		Segments: segs,
	}, nil
}

// CompileAll compiles every definition, stopping at the first failure.
func CompileAll(defs []Definition) ([]IconAsset, error) {
	icons := make([]IconAsset, 0, len(defs))
	for i, def := range defs {
		icon, err := Compile(def)
		if err != nil {
			return nil, errors.WithMessagef(err, "definition %d", i)
		}
		icons = append(icons, icon)
	}
	return icons, nil
}

// padArt measures lines without their markers and pads each to width.
func padArt(art string, width int) (string, int, error) {
	art = strings.TrimRight(art, "\n")
	lines := strings.Split(art, "\n")
	visible := make([]int, len(lines))
	widest := 0
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		lines[i] = line
		visible[i] = utf8.RuneCountInString(markerRe.ReplaceAllString(line, ""))
		if visible[i] > widest {
			widest = visible[i]
		}
	}
	if width == 0 {
		width = widest
	}
	if width > 0xffff {
		return "", 0, errors.Wrapf(ErrInvalidAsset, "width %d too large", width)
	}
	for i, line := range lines {
		if visible[i] > width {
			return "", 0, errors.Wrapf(ErrInvalidAsset, "line %d is %d columns, declared width is %d", i+1, visible[i], width)
		}
		lines[i] = line + strings.Repeat(" ", width-visible[i])
	}
	return strings.Join(lines, "\n"), width, nil
}

// Package ascii holds the icon and color-scheme assets: the human-authored
// definitions, the template compiler that turns them into segment lists, the
// binary archive they ship in, and the colorizers that paint them.
package ascii

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound means no icon or scheme carries the requested name.
	ErrNotFound = errors.New("not found")
	// ErrArchiveCorrupt means an archive failed structural validation.
	ErrArchiveCorrupt = errors.New("archive corrupt")
	// ErrInvalidAsset means a definition or asset breaks a compile-time rule,
	// or art is not shaped the way a colorizer requires.
	ErrInvalidAsset = errors.New("invalid asset")
)

// Segment is one run of art text painted with a single palette entry.
// Index is 1-based.
type Segment struct {
	Index uint8
	Text  string
}

// IconAsset is a compiled icon.
type IconAsset struct {
	// Aliases are the lower-cased names the icon answers to.
	Aliases []string
	// Palette is indexed by Segment.Index - 1.
	Palette []Color
	// Width is the column count of every art line; the info panel starts
	// right of it.
	Width uint16
	// Segments in drawing order.
	Segments []Segment
}

// Matches reports whether name is one of the aliases, ignoring case.
func (a IconAsset) Matches(name string) bool {
	name = strings.ToLower(name)
	for _, alias := range a.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// Text is the art with all color information dropped.
func (a IconAsset) Text() string {
	var b strings.Builder
	for _, s := range a.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Clone returns a deep copy, so a caller can own what a lookup returned.
func (a IconAsset) Clone() IconAsset {
	return IconAsset{
		Aliases:  append([]string(nil), a.Aliases...),
		Palette:  append([]Color(nil), a.Palette...),
		Width:    a.Width,
		Segments: append([]Segment(nil), a.Segments...),
	}
}

// validate checks every segment index against the palette.
func (a IconAsset) validate() error {
	if len(a.Aliases) == 0 {
		return errors.New("icon has no names")
	}
	for i, s := range a.Segments {
		if s.Index == 0 || int(s.Index) > len(a.Palette) {
			return errors.Errorf("icon %q segment %d uses color %d of %d", a.Aliases[0], i, s.Index, len(a.Palette))
		}
	}
	return nil
}

// Scheme is a named, ordered list of colors. Order is stripe order.
type Scheme struct {
	Name   string
	Colors []Color
}

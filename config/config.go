// Package config resolves the per-run settings: which icon to draw, which
// color scheme (if any) to band it with, and the band orientation. Values are
// overlaid defaults < config file < command-line flags; an unset field in a
// higher layer falls through to the one below.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// ErrMissingOrientation is returned when a color scheme is configured but no
// orientation was given to lay its stripes out with.
var ErrMissingOrientation = errors.New("color scheme set without an orientation")

// Orientation selects how scheme stripes are laid over the art.
type Orientation string

const (
	OrientationUnset      Orientation = ""
	OrientationHorizontal Orientation = "horizontal" // One stripe per text line.
	OrientationVertical   Orientation = "vertical"   // One stripe per column.
)

// ParseOrientation accepts horizontal/h and vertical/v in any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OrientationUnset, nil
	case "horizontal", "h":
		return OrientationHorizontal, nil
	case "vertical", "v":
		return OrientationVertical, nil
	}
	return OrientationUnset, errors.Errorf("invalid orientation %q (use 'horizontal' or 'vertical')", s)
}

// UnmarshalText lets the config file spell orientations loosely.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// String implements pflag.Value.
func (o *Orientation) String() string { return string(*o) }

// Set implements pflag.Value.
func (o *Orientation) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements pflag.Value.
func (o *Orientation) Type() string { return "orientation" }

// Config holds the resolved settings. Empty fields are unset.
type Config struct {
	Scheme      string      `toml:"scheme"`
	Orientation Orientation `toml:"orientation"`
	Icon        string      `toml:"icon"`
}

// Defaults returns the base layer: plain icon colors, icon chosen from the
// detected distribution.
func Defaults() Config {
	return Config{}
}

// Overlay returns base with every set field of top applied over it.
func Overlay(base, top Config) Config {
	if top.Scheme != "" {
		base.Scheme = top.Scheme
	}
	if top.Orientation != OrientationUnset {
		base.Orientation = top.Orientation
	}
	if top.Icon != "" {
		base.Icon = top.Icon
	}
	return base
}

// DefaultPath is $XDG_CONFIG_HOME/prismfetch/config.toml (or the platform
// equivalent). It returns "" when no user config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "prismfetch", "config.toml")
}

// LoadFile reads a TOML config file. A missing file yields an empty Config.
func LoadFile(path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return c, nil
}

// Flags is the command-line layer. Register binds it to a flag set; after
// parsing, Config returns only the flags the user actually passed.
type Flags struct {
	fs          *pflag.FlagSet
	scheme      string
	orientation Orientation
	icon        string
}

// Register adds -s/--scheme, -o/--orientation and -i/--icon to fs.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.scheme, "scheme", "s", "", "color scheme (flag) to band the icon with")
	fs.VarP(&f.orientation, "orientation", "o", "stripe orientation: horizontal or vertical")
	fs.StringVarP(&f.icon, "icon", "i", "", "icon name (defaults to the detected distribution)")
	return f
}

// Config returns the flags that were set on the command line.
func (f *Flags) Config() Config {
	var c Config
	if f.fs.Changed("scheme") {
		c.Scheme = f.scheme
	}
	if f.fs.Changed("orientation") {
		c.Orientation = f.orientation
	}
	if f.fs.Changed("icon") {
		c.Icon = f.icon
	}
	return c
}

// Resolve overlays defaults, the file at path and the command-line flags.
func Resolve(path string, flags *Flags) (Config, error) {
	file, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	c := Overlay(Defaults(), file)
	if flags != nil {
		c = Overlay(c, flags.Config())
	}
	return c, c.Validate()
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Orientation {
	case OrientationUnset, OrientationHorizontal, OrientationVertical:
		// valid
	default:
		return errors.Errorf("invalid orientation %q", c.Orientation)
	}
	if c.Scheme != "" && c.Orientation == OrientationUnset {
		return errors.WithMessagef(ErrMissingOrientation, "scheme %q", c.Scheme)
	}
	return nil
}

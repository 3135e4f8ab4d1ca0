package ascii

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"prismfetch/logging"
)

//go:generate go run ../cmd/asciigen -dir data

// File names inside the asset directory.
const (
	IconSource    = "icons.yaml"
	SchemeSource  = "flags.toml"
	IconArchive   = "icons.bin"
	SchemeArchive = "flags.bin"
)

//go:embed data
var embedded embed.FS

// Store resolves icons and schemes by name.
type Store struct {
	icons   []IconAsset
	schemes []Scheme
}

// NewStore wraps already-compiled assets.
func NewStore(icons []IconAsset, schemes []Scheme) *Store {
	return &Store{icons: icons, schemes: schemes}
}

// Default loads the assets embedded in the binary.
func Default(log *logging.Logger) (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadStore(sub, log)
}

// LoadStore reads the icon and scheme archives from fsys. When an archive
// has not been generated yet, the matching source definition is compiled
// in its place. An archive that exists but fails validation is an error.
func LoadStore(fsys fs.FS, log *logging.Logger) (*Store, error) {
	icons, err := loadIcons(fsys, log)
	if err != nil {
		return nil, err
	}
	schemes, err := loadSchemes(fsys, log)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded %d icons and %d color schemes", len(icons), len(schemes))
	return NewStore(icons, schemes), nil
}

func loadIcons(fsys fs.FS, log *logging.Logger) ([]IconAsset, error) {
	data, err := fs.ReadFile(fsys, IconArchive)
	if err == nil {
		icons, derr := DecodeIcons(data)
		return icons, errors.WithMessage(derr, IconArchive)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "read icon archive")
	}

	log.Debug("%s not generated, compiling %s", IconArchive, IconSource)
	src, err := fs.ReadFile(fsys, IconSource)
	if err != nil {
		return nil, errors.Wrap(err, "read icon definitions")
	}
	defs, err := ParseDefinitions(src)
	if err != nil {
		return nil, err
	}
	return CompileAll(defs)
}

func loadSchemes(fsys fs.FS, log *logging.Logger) ([]Scheme, error) {
	data, err := fs.ReadFile(fsys, SchemeArchive)
	if err == nil {
		schemes, derr := DecodeSchemes(data)
		return schemes, errors.WithMessage(derr, SchemeArchive)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "read scheme archive")
	}

	log.Debug("%s not generated, compiling %s", SchemeArchive, SchemeSource)
	src, err := fs.ReadFile(fsys, SchemeSource)
	if err != nil {
		return nil, errors.Wrap(err, "read scheme definitions")
	}
	return ParseSchemes(src)
}

// Icon returns a copy of the first icon with name among its aliases.
func (s *Store) Icon(name string) (IconAsset, error) {
	for _, icon := range s.icons {
		if icon.Matches(name) {
			return icon.Clone(), nil
		}
	}
	return IconAsset{}, errors.Wrapf(ErrNotFound, "icon %q", name)
}

// Scheme returns the scheme called name, ignoring case.
func (s *Store) Scheme(name string) (Scheme, error) {
	for _, scheme := range s.schemes {
		if strings.EqualFold(scheme.Name, name) {
			return Scheme{Name: scheme.Name, Colors: append([]Color(nil), scheme.Colors...)}, nil
		}
	}
	return Scheme{}, errors.Wrapf(ErrNotFound, "color scheme %q", name)
}

// IconNames lists every alias, sorted.
func (s *Store) IconNames() []string {
	var names []string
	for _, icon := range s.icons {
		names = append(names, icon.Aliases...)
	}
	sort.Strings(names)
	return names
}

// SchemeNames lists every scheme name, sorted.
func (s *Store) SchemeNames() []string {
	names := make([]string, 0, len(s.schemes))
	for _, scheme := range s.schemes {
		names = append(names, scheme.Name)
	}
	sort.Strings(names)
	return names
}

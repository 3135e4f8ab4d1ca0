// Command asciigen compiles the icon and color scheme definitions into the
// binary archives the ascii package embeds.
//
// Usage:
//
//	asciigen -dir ascii/data
package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"prismfetch/ascii"
	"prismfetch/logging"
)

func main() {
	dir := pflag.StringP("dir", "d", ".", "directory holding the definition files")
	debug := pflag.Bool("debug", false, "enable debug output")
	pflag.Parse()

	log := logging.New(os.Stderr, logging.Options{Debug: *debug})
	if err := generate(*dir, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

// generate writes the icon and scheme archives next to their sources.
func generate(dir string, log *logging.Logger) error {
	src, err := os.ReadFile(filepath.Join(dir, ascii.IconSource))
	if err != nil {
		return errors.Wrap(err, "read icon definitions")
	}
	defs, err := ascii.ParseDefinitions(src)
	if err != nil {
		return err
	}
	icons, err := ascii.CompileAll(defs)
	if err != nil {
		return err
	}
	data, err := ascii.EncodeIcons(icons)
	if err != nil {
		return err
	}
	if err := writeArchive(filepath.Join(dir, ascii.IconArchive), data); err != nil {
		return err
	}
	log.Info("wrote %d icons to %s", len(icons), ascii.IconArchive)

	src, err = os.ReadFile(filepath.Join(dir, ascii.SchemeSource))
	if err != nil {
		return errors.Wrap(err, "read scheme definitions")
	}
	schemes, err := ascii.ParseSchemes(src)
	if err != nil {
		return err
	}
	if data, err = ascii.EncodeSchemes(schemes); err != nil {
		return err
	}
	if err := writeArchive(filepath.Join(dir, ascii.SchemeArchive), data); err != nil {
		return err
	}
	log.Info("wrote %d color schemes to %s", len(schemes), ascii.SchemeArchive)
	return nil
}

// writeArchive replaces path atomically so a failed run never leaves a
// truncated archive for the embed to pick up.
func writeArchive(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".asciigen-*")
	if err != nil {
		return errors.Wrap(err, "create temp archive")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "rename to %s", path)
}

// Package main provides the prismfetch command-line tool for displaying
// system information next to a distribution icon, optionally banded in the
// colors of a flag.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"prismfetch/ascii"
	"prismfetch/config"
	"prismfetch/logging"
	"prismfetch/sysinfo"
)

// main is the entry point for the prismfetch application.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, gathers system information, colors the icon and writes
// the side-by-side output to stdout. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("prismfetch", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.Register(fs)
	configPath := fs.StringP("config", "c", config.DefaultPath(), "config file")
	gap := fs.Int("gap", 3, "number of spaces between icon and info")
	listIcons := fs.Bool("list-icons", false, "list icon names and exit")
	listSchemes := fs.Bool("list-schemes", false, "list color schemes and exit")
	debug := fs.Bool("debug", false, "enable debug output (same as "+logging.DebugEnv+"=1)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logging.New(stderr, logging.Options{Debug: *debug})

	store, err := ascii.Default(log)
	if err != nil {
		log.Error("load assets: %v", err)
		return 1
	}

	switch {
	case *listIcons:
		printNames(stdout, store.IconNames())
		return 0
	case *listSchemes:
		printNames(stdout, store.SchemeNames())
		return 0
	}

	cfg, err := config.Resolve(*configPath, flags)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	colorizer, err := newColorizer(store, cfg)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	snap := sysinfo.NewAggregator(sysinfo.Native(log), sysinfo.WithLogger(log)).Run()
	log.Debug("collected %d rows, distro id %q", len(snap.Records), snap.DistroID)

	icon, err := pickIcon(store, cfg.Icon, snap.DistroID, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	styled, err := colorizer.Colorize(icon)
	if err != nil {
		log.Error("color icon: %v", err)
		return 1
	}

	// Render fully before writing so a failure never leaves half an image.
	var buf bytes.Buffer
	displayInfo(&buf, ascii.Lines(styled), snap.Records, *gap)
	if _, err := io.Copy(stdout, &buf); err != nil {
		log.Error("write output: %v", err)
		return 1
	}
	return 0
}

// newColorizer resolves the configured scheme, if any, into a Colorizer.
func newColorizer(store *ascii.Store, cfg config.Config) (ascii.Colorizer, error) {
	if cfg.Scheme == "" {
		return ascii.NewColorizer(nil, cfg.Orientation)
	}
	scheme, err := store.Scheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	return ascii.NewColorizer(&scheme, cfg.Orientation)
}

// pickIcon prefers the configured icon and falls back from the detected
// distribution to the generic one. Only an explicitly requested icon that
// does not exist is an error.
func pickIcon(store *ascii.Store, configured, distro string, log *logging.Logger) (ascii.IconAsset, error) {
	if configured != "" {
		return store.Icon(configured)
	}
	icon, err := store.Icon(distro)
	if errors.Is(err, ascii.ErrNotFound) && distro != sysinfo.UnknownID {
		log.Debug("no icon for %q, using %q", distro, sysinfo.UnknownID)
		return store.Icon(sysinfo.UnknownID)
	}
	return icon, err
}

func printNames(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

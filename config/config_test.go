package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"horizontal", OrientationHorizontal, false},
		{"H", OrientationHorizontal, false},
		{" Vertical ", OrientationVertical, false},
		{"v", OrientationVertical, false},
		{"", OrientationUnset, false},
		{"diagonal", OrientationUnset, true},
	}
	for _, tc := range tests {
		got, err := ParseOrientation(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestOverlay_LastWinsMissingFallsThrough(t *testing.T) {
	base := Config{Scheme: "rainbow", Orientation: OrientationHorizontal, Icon: "arch"}
	top := Config{Icon: "debian"}

	got := Overlay(base, top)
	assert.Equal(t, Config{Scheme: "rainbow", Orientation: OrientationHorizontal, Icon: "debian"}, got)
	assert.Equal(t, base, Overlay(base, Config{}))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("scheme = \"transgender\"\norientation = \"V\"\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Scheme: "transgender", Orientation: OrientationVertical}, c)
}

func TestLoadFile_Missing(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)
}

func TestLoadFile_BadOrientation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("orientation = \"sideways\"\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("scheme = \"rainbow\"\norientation = \"horizontal\"\nicon = \"arch\"\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := Register(fs)
	require.NoError(t, fs.Parse([]string{"-o", "vertical"}))

	c, err := Resolve(path, flags)
	require.NoError(t, err)
	assert.Equal(t, Config{Scheme: "rainbow", Orientation: OrientationVertical, Icon: "arch"}, c)
}

func TestResolve_MissingOrientation(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := Register(fs)
	require.NoError(t, fs.Parse([]string{"--scheme", "bisexual"}))

	_, err := Resolve("", flags)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingOrientation))
}

func TestFlags_InvalidOrientationRejected(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Register(fs)
	assert.Error(t, fs.Parse([]string{"--orientation", "up"}))
}

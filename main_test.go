package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prismfetch/ascii"
	"prismfetch/sysinfo"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayInfo(t *testing.T) {
	noColor(t)

	art := []string{"/\\", "/  \\", "----"}
	records := []sysinfo.Record{
		{Value: "ada@engine"},
		{Value: "----------"},
		{Label: "OS", Value: "Arch Linux x86_64"},
		{Label: "Kernel", Value: "6.9.1"},
	}

	var buf bytes.Buffer
	displayInfo(&buf, art, records, 2)

	assert.Equal(t, strings.Join([]string{
		"/\\    ada@engine",
		"/  \\  ----------",
		"----  OS: Arch Linux x86_64",
		"      Kernel: 6.9.1",
	}, "\n")+"\n", buf.String())
}

func TestDisplayInfo_ArtLongerThanInfo(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	displayInfo(&buf, []string{"a", "bb", "ccc"}, []sysinfo.Record{{Label: "OS", Value: "x"}}, 1)
	assert.Equal(t, "a   OS: x\nbb\nccc\n", buf.String())
}

func TestGetVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{"\x1b[1;34mOS\x1b[0m", 2},
		{"\x1b[48;5;3m   \x1b[0m", 3},
		{"日本", 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, getVisibleWidth(tc.in), "%q", tc.in)
	}
}

func TestPickIcon(t *testing.T) {
	store, err := ascii.Default(nil)
	require.NoError(t, err)

	icon, err := pickIcon(store, "", "debian", nil)
	require.NoError(t, err)
	assert.True(t, icon.Matches("debian"))

	icon, err = pickIcon(store, "", "plan9", nil)
	require.NoError(t, err)
	assert.True(t, icon.Matches(sysinfo.UnknownID))

	_, err = pickIcon(store, "plan9", "arch", nil)
	assert.ErrorIs(t, err, ascii.ErrNotFound)
}

func TestRun_Lists(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--list-schemes"}, &stdout, &stderr))
	assert.Contains(t, strings.Split(stdout.String(), "\n"), "rainbow")

	stdout.Reset()
	require.Equal(t, 0, run([]string{"--list-icons"}, &stdout, &stderr))
	assert.Contains(t, strings.Split(stdout.String(), "\n"), "arch")
}

func TestRun_ConfigErrors(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.toml")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"scheme without orientation", []string{"-c", cfg, "-s", "rainbow"}, "without an orientation"},
		{"unknown scheme", []string{"-c", cfg, "-s", "plaid", "-o", "h"}, "plaid"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 1, run(tc.args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tc.want)
		})
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"--orientation", "diagonal"}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
}

func TestRun_Render(t *testing.T) {
	noColor(t)
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfg, "-i", "unknown", "-s", "rainbow", "-o", "vertical"}, &stdout, &stderr), stderr.String())
	assert.NotEmpty(t, stdout.String())
}

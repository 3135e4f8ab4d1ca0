package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prismfetch/ascii"
)

const iconsFixture = `- names: ["box"]
  colors: ["red", "#00ff00"]
  art: |-
    ${c1}[]${c2}[]
    ${c1}[][]
`

const schemesFixture = `duo = [[255, 0, 0], [0, 0, 255]]
`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ascii.IconSource), []byte(iconsFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ascii.SchemeSource), []byte(schemesFixture), 0o644))

	require.NoError(t, generate(dir, nil))

	store, err := ascii.LoadStore(os.DirFS(dir), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"box"}, store.IconNames())
	assert.Equal(t, []string{"duo"}, store.SchemeNames())

	data, err := os.ReadFile(filepath.Join(dir, ascii.IconArchive))
	require.NoError(t, err)
	icons, err := ascii.DecodeIcons(data)
	require.NoError(t, err)
	require.Len(t, icons, 1)
	assert.Equal(t, uint16(4), icons[0].Width)

	leftovers, err := filepath.Glob(filepath.Join(dir, ".asciigen-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestGenerate_InvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	bad := "- names: [\"x\"]\n  colors: [\"red\"]\n  art: \"${c2}oops\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ascii.IconSource), []byte(bad), 0o644))

	err := generate(dir, nil)
	assert.ErrorIs(t, err, ascii.ErrInvalidAsset)
	_, statErr := os.Stat(filepath.Join(dir, ascii.IconArchive))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_MissingSources(t *testing.T) {
	assert.Error(t, generate(t.TempDir(), nil))
}

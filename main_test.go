package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()

	file, err := outputFile(filepath.Join(dir, `dist`) + `/`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `dist`, `index.html`), file)
	assert.DirExists(t, filepath.Join(dir, `dist`))

	file, err = outputFile(filepath.Join(dir, `dist`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `dist`, `index.html`), file)

	file, err = outputFile(filepath.Join(dir, `site`, `board.html`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `site`, `board.html`), file)
	assert.DirExists(t, filepath.Join(dir, `site`))

	_, err = outputFile(``)
	assert.Error(t, err)
}

func TestOutputFileDirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, `blocker`)
	require.NoError(t, os.WriteFile(blocker, []byte(`x`), 0o644))

	_, err := outputFile(filepath.Join(blocker, `sub`, `index.html`))
	assert.ErrorContains(t, err, `failed to create output directory`)

	_, err = outputFile(filepath.Join(blocker, `sub`) + `/`)
	assert.ErrorContains(t, err, `failed to create output directory`)
}

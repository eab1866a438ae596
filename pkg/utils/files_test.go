package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathInfo(t *testing.T) {
	dir := t.TempDir()
	full, parent, err := GetPathInfo(filepath.Join(dir, "sub", "..", "prog.oct"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prog.oct"), full)
	assert.Equal(t, dir, parent)
}

func TestReadSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.oct")
	require.NoError(t, os.WriteFile(path, []byte("Start Array 7.0 AB123=7.0 End"), 0o644))

	src, name, err := ReadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Start Array 7.0 AB123=7.0 End", src)
	assert.Equal(t, path, name)
}

func TestReadSourceStdin(t *testing.T) {
	src, name, err := ReadSource("-", strings.NewReader("Start End"))
	require.NoError(t, err)
	assert.Equal(t, "Start End", src)
	assert.Equal(t, "<stdin>", name)
}

func TestReadSourceMissing(t *testing.T) {
	_, _, err := ReadSource(filepath.Join(t.TempDir(), "missing.oct"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

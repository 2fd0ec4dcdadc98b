package fileutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	fs := NewOSFileSystem()
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "running-config.txt")

	assert.False(t, fs.FileExists(path))

	require.NoError(t, fs.MkdirAll(dir, 0755))
	require.NoError(t, fs.WriteFile(path, []byte("enable password 7 02050D480809\n"), 0644))
	assert.True(t, fs.FileExists(path))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "enable password 7 02050D480809\n", string(data))

	_, err = fs.ReadFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestOSFileSystem_SaveText(t *testing.T) {
	fs := NewOSFileSystem()
	path := filepath.Join(t.TempDir(), "out", "report.txt")

	require.NoError(t, SaveText(fs, path, "cisco", EncodingUTF16))

	got, err := ReadText(fs, path, EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, "cisco", got)
}

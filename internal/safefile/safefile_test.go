package safefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assessment.json")
	content := []byte(`{"company":"Seaside Hotel"}`)

	require.NoError(t, WriteFile(path, content, 0o600))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assessment.json")

	require.NoError(t, WriteFile(path, []byte("first, longer content"), 0o600))
	require.NoError(t, WriteFile(path, []byte("second"), 0o600))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestWriteFileRejectsSymlinkTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.json")
	link := filepath.Join(dir, "link.json")
	require.NoError(t, os.WriteFile(target, []byte("keep"), 0o600))
	require.NoError(t, os.Symlink(target, link))

	err := WriteFile(link, []byte("overwrite"), 0o600)
	assert.ErrorIs(t, err, ErrIsSymlink)

	// The target must be untouched.
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), got)
}

func TestWriteFileRejectsSymlinkParent(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0o750))
	linkDir := filepath.Join(dir, "linked")
	require.NoError(t, os.Symlink(real, linkDir))

	err := WriteFile(filepath.Join(linkDir, "out.json"), []byte("x"), 0o600)
	assert.ErrorIs(t, err, ErrIsSymlink)
}

func TestReadFileRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.json")
	link := filepath.Join(dir, "link.json")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0o600))
	require.NoError(t, os.Symlink(target, link))

	_, err := ReadFile(link)
	assert.ErrorIs(t, err, ErrIsSymlink)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, os.IsNotExist(err))
}

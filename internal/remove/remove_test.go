package remove

import (
	"os"
	"path/filepath"
	"testing"

	"eradicate/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFile(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, "a.txt", "sub/")
	fs := FS{}

	require.NoError(t, fs.RemoveFile(filepath.Join(dir, "a.txt")))
	assert.False(t, testutils.Exists(filepath.Join(dir, "a.txt")))

	err := fs.RemoveFile(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(err))

	err = fs.RemoveFile(filepath.Join(dir, "sub"))
	assert.Error(t, err)
	assert.True(t, testutils.Exists(filepath.Join(dir, "sub")))
}

func TestRemoveTree(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, "build/out/bin", "build/obj/x.o", "keep.txt")
	fs := FS{}

	require.NoError(t, fs.RemoveTree(filepath.Join(dir, "build")))
	assert.False(t, testutils.Exists(filepath.Join(dir, "build")))
	assert.True(t, testutils.Exists(filepath.Join(dir, "keep.txt")))

	err := fs.RemoveTree(filepath.Join(dir, "build"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveTreeOnSymlinkKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, "real/file")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), link))

	require.NoError(t, FS{}.RemoveTree(link))
	assert.False(t, testutils.Exists(link))
	assert.True(t, testutils.Exists(filepath.Join(dir, "real", "file")))
}

var _ Remover = FS{}

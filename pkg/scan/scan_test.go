package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file at the joined path, making parents as needed.
func touch(t *testing.T, parts ...string) {
	t.Helper()
	path := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent dirs")
	require.NoError(t, os.WriteFile(path, nil, 0644), "creating file")
}

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func TestScanFlat(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "my.file.txt")
	touch(t, dir, "clean.txt")
	touch(t, dir, ".hidden")
	touch(t, dir, "sub", "nested.file.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))

	res, err := Scan(context.Background(), dir, Options{})
	require.NoError(t, err, "scanning should succeed")

	assert.Equal(t, []string{"clean.txt", "my.file.txt"}, entryNames(res.Entries),
		"only visible files in the root, in sorted order")
	assert.Equal(t, 1, res.Stats.DirsScanned)
	assert.Equal(t, 3, res.Stats.FilesScanned, "hidden files count as scanned")
	assert.Equal(t, 1, res.Stats.HiddenFiles)
	assert.Equal(t, 1, res.Stats.HiddenDirs)
	assert.False(t, res.Truncated)

	assert.True(t, res.Exists(dir, ".hidden"), "hidden files belong to the name universe")
	assert.True(t, res.Exists(dir, "sub"), "subdirectory names belong to the name universe")
	assert.True(t, res.Exists(dir, ".git"))
	assert.False(t, res.Exists(dir, "nested.file.txt"), "nested files are out of scope")
}

func TestScanRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "root.file.txt")
	touch(t, dir, "sub", "a.txt")
	touch(t, dir, "sub", "b.file.txt")
	touch(t, dir, "sub", ".hidden")
	touch(t, dir, ".cache", "ignored.file.txt")
	touch(t, dir, "sub", "deeper", "c.txt")

	res, err := Scan(context.Background(), dir, Options{Recursive: true})
	require.NoError(t, err, "scanning should succeed")

	assert.Equal(t, []string{"root.file.txt", "a.txt", "b.file.txt", "c.txt"}, entryNames(res.Entries),
		"root entries first, then subdirectories in path order")
	assert.Equal(t, 3, res.Stats.DirsScanned, "root, sub and sub/deeper")
	assert.Equal(t, 5, res.Stats.FilesScanned, "files behind pruned directories are never seen")
	assert.Equal(t, 1, res.Stats.HiddenFiles)
	assert.Equal(t, 1, res.Stats.HiddenDirs)

	sub := filepath.Join(dir, "sub")
	assert.True(t, res.Exists(sub, "a.txt"))
	assert.True(t, res.Exists(sub, "deeper"), "subdirectory names are recorded per directory")
	assert.True(t, res.Exists(dir, ".cache"))
}

func TestScanIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "keep.me.txt")
	touch(t, dir, "drop.me.bak")
	touch(t, dir, "archive", "old.file.txt")
	touch(t, dir, "other", "new.file.txt")

	res, err := Scan(context.Background(), dir, Options{
		Recursive:      true,
		IgnorePatterns: []string{"*.bak", "archive/**"},
	})
	require.NoError(t, err, "scanning should succeed")

	assert.Equal(t, []string{"keep.me.txt", "new.file.txt"}, entryNames(res.Entries))
	assert.Equal(t, 2, res.Stats.Ignored)
	assert.True(t, res.Exists(filepath.Join(dir, "archive"), "old.file.txt"),
		"ignored files still occupy their names")
}

func TestScanFileLimit(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.x.txt", "b.x.txt", "c.x.txt", "d.x.txt", "e.x.txt"} {
		touch(t, dir, name)
	}

	res, err := Scan(context.Background(), dir, Options{MaxFiles: 3})
	require.NoError(t, err, "hitting the limit is not an error")

	assert.True(t, res.Truncated, "scan should report truncation")
	assert.Equal(t, 3, res.Stats.FilesScanned)
	assert.Len(t, res.Entries, 3, "no candidates beyond the limit")
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err, "a missing root is fatal")
	assert.Contains(t, err.Error(), "reading directory")

	_, err = Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{Recursive: true})
	require.Error(t, err, "a missing root is fatal in recursive mode too")
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.file.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, dir, Options{})
	require.Error(t, err, "a cancelled context should abort the scan")
	assert.ErrorIs(t, err, context.Canceled)
}

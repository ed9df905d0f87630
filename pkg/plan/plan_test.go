package plan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/scan"
)

func newResult(root string) *scan.Result {
	return &scan.Result{Root: root, Existing: map[string]map[string]struct{}{}}
}

// addFiles registers candidate files: they appear both as entries and in the
// directory's name universe, the same way a real scan records them.
func addFiles(res *scan.Result, dir string, names ...string) {
	for _, name := range names {
		res.Entries = append(res.Entries, scan.Entry{Dir: dir, Name: name})
		occupy(res, dir, name)
	}
}

// occupy registers names that exist in dir without being rename candidates,
// like subdirectories or hidden files.
func occupy(res *scan.Result, dir string, names ...string) {
	for _, name := range names {
		if res.Existing[dir] == nil {
			res.Existing[dir] = map[string]struct{}{}
		}
		res.Existing[dir][name] = struct{}{}
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	dir := "/data"

	t.Run("no_op_names_are_excluded", func(t *testing.T) {
		res := newResult(dir)
		addFiles(res, dir, "clean.txt", "dirty.file.txt")

		p := Build(ctx, res, config.Default())

		require.Len(t, p.Items, 1, "only the dirty name should be planned")
		assert.Equal(t, "dirty.file.txt", p.Items[0].OriginalName)
		assert.Equal(t, "dirty_file.txt", p.Items[0].NewName)
		assert.Equal(t, 1, p.AlreadyClean)
		assert.Empty(t, p.Collisions)
	})

	t.Run("collision_with_existing_file", func(t *testing.T) {
		res := newResult(dir)
		addFiles(res, dir, "a.txt", "a b.txt", "a_b.txt")

		p := Build(ctx, res, config.Default())

		assert.Empty(t, p.Items, "nothing can be renamed safely")
		assert.Equal(t, 2, p.AlreadyClean, "a.txt and a_b.txt are already clean")
		require.Len(t, p.Collisions, 1)
		assert.Equal(t, "a b.txt", p.Collisions[0].OriginalName)
		assert.Equal(t, "a_b.txt", p.Collisions[0].NewName)
		assert.Equal(t, "destination exists", p.Collisions[0].Reason)
	})

	t.Run("duplicate_targets_first_claim_wins", func(t *testing.T) {
		res := newResult(dir)
		addFiles(res, dir, "a b.txt", "a.b.txt")

		p := Build(ctx, res, config.Default())

		require.Len(t, p.Items, 1)
		assert.Equal(t, "a b.txt", p.Items[0].OriginalName, "the first entry keeps the claim")
		require.Len(t, p.Collisions, 1)
		assert.Equal(t, "a.b.txt", p.Collisions[0].OriginalName)
		assert.Contains(t, p.Collisions[0].Reason, "a b.txt", "the reason should name the claim holder")
	})

	t.Run("directories_are_independent", func(t *testing.T) {
		res := newResult("/data")
		addFiles(res, "/data/one", "x y.txt")
		addFiles(res, "/data/two", "x y.txt")

		p := Build(ctx, res, config.Default())

		assert.Len(t, p.Items, 2, "the same rename in different directories never conflicts")
		assert.Empty(t, p.Collisions)
	})

	t.Run("collision_with_subdirectory_name", func(t *testing.T) {
		res := newResult(dir)
		addFiles(res, dir, "my docs.txt")
		occupy(res, dir, "my_docs.txt")

		p := Build(ctx, res, config.Default())

		assert.Empty(t, p.Items)
		require.Len(t, p.Collisions, 1)
		assert.Equal(t, "destination exists", p.Collisions[0].Reason)
	})

	t.Run("target_held_by_file_that_itself_renames", func(t *testing.T) {
		res := newResult(dir)
		addFiles(res, dir, "a.txt", "new_a.txt")

		p := Build(ctx, res, &config.Config{Replacement: "_", Prefix: "new_"})

		// new_a.txt renames away, but its current name still blocks a.txt:
		// claims are checked against everything the scan saw.
		require.Len(t, p.Items, 1)
		assert.Equal(t, "new_a.txt", p.Items[0].OriginalName)
		require.Len(t, p.Collisions, 1)
		assert.Equal(t, "a.txt", p.Collisions[0].OriginalName)
		assert.Equal(t, "destination exists", p.Collisions[0].Reason)
	})

	t.Run("empty_scan_builds_empty_plan", func(t *testing.T) {
		p := Build(ctx, newResult(dir), config.Default())
		assert.True(t, p.Empty())
		assert.Zero(t, p.ToRename())
	})
}

func TestItemPaths(t *testing.T) {
	item := Item{Dir: "/data", OriginalName: "a b.txt", NewName: "a_b.txt"}
	assert.Equal(t, filepath.Join("/data", "a b.txt"), item.OriginalPath())
	assert.Equal(t, filepath.Join("/data", "a_b.txt"), item.NewPath())
}

// End to end through a real directory: a.txt, a b.txt and a pre-existing
// a_b.txt living side by side.
func TestBuildFromScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "a b.txt", "a_b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	res, err := scan.Scan(context.Background(), dir, scan.Options{})
	require.NoError(t, err)

	p := Build(context.Background(), res, config.Default())

	assert.Empty(t, p.Items)
	require.Len(t, p.Collisions, 1)
	assert.Equal(t, "a b.txt", p.Collisions[0].OriginalName)
	assert.Equal(t, 1, p.ToRename())
	assert.False(t, p.Empty())
}

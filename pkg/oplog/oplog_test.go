package oplog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/plan"
)

var testStart = time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

func TestFilename(t *testing.T) {
	l := New("/data", config.Default(), testStart)
	assert.Equal(t, "rename_log_20240115_143022.txt", l.Filename())
	assert.Equal(t, filepath.Join("/data", "rename_log_20240115_143022.txt"), l.Path())
}

func TestRecordLine(t *testing.T) {
	item := plan.Item{Dir: "/data", OriginalName: "a b.txt", NewName: "a_b.txt"}

	renamed := Record{Item: item, Outcome: OutcomeRenamed}
	assert.Equal(t,
		"RENAMED: "+filepath.Join("/data", "a b.txt")+" -> "+filepath.Join("/data", "a_b.txt"),
		renamed.Line())

	failed := Record{Item: item, Outcome: OutcomeFailed, Reason: "destination exists"}
	assert.Contains(t, failed.Line(), "FAILED: ")
	assert.Contains(t, failed.Line(), "(destination exists)")
}

func TestRender(t *testing.T) {
	cfg := &config.Config{Replacement: "", Prefix: "img_", Recursive: true}
	l := New("/data/photos", cfg, testStart)
	l.Add(plan.Item{Dir: "/data/photos", OriginalName: "a b.txt", NewName: "img_ab.txt"}, OutcomeRenamed, "")
	l.Add(plan.Item{Dir: "/data/photos", OriginalName: "c d.txt", NewName: "img_cd.txt"}, OutcomeFailed, "destination exists")

	out := l.Render()

	assert.Contains(t, out, "Rename Operation Log - 20240115_143022\n")
	assert.Contains(t, out, "Directory: /data/photos\n")
	assert.Contains(t, out, "Replacement: (removed)\n", "empty replacement renders as removal")
	assert.Contains(t, out, "Prefix: 'img_'\n")
	assert.NotContains(t, out, "Suffix:", "unset settings stay out of the header")
	assert.Contains(t, out, "Recursive: yes\n")
	assert.Contains(t, out, "RENAMED: ")
	assert.Contains(t, out, "FAILED: ")
	assert.Contains(t, out, "Summary: 1 renamed, 1 failed, 0 skipped\n")
}

func TestCounts(t *testing.T) {
	l := New("/data", config.Default(), testStart)
	item := plan.Item{Dir: "/data", OriginalName: "a b.txt", NewName: "a_b.txt"}
	l.Add(item, OutcomeRenamed, "")
	l.Add(item, OutcomeRenamed, "")
	l.Add(item, OutcomeSkipped, "")
	l.Add(item, OutcomeFailed, "permission denied")

	renamed, skipped, failed := l.Counts()
	assert.Equal(t, 2, renamed)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, failed)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, config.Default(), testStart)
	l.Add(plan.Item{Dir: dir, OriginalName: "a b.txt", NewName: "a_b.txt"}, OutcomeRenamed, "")

	path, err := l.Write(context.Background())
	require.NoError(t, err, "writing the log should succeed")
	assert.Equal(t, l.Path(), path)
	assert.Equal(t, path, l.WrittenPath, "a successful write records its path")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, l.Render(), string(data), "file content should match the rendering")
}

func TestWriteFailure(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing"), config.Default(), testStart)

	_, err := l.Write(context.Background())
	require.Error(t, err, "an unwritable directory should surface an error")
	assert.Contains(t, err.Error(), "writing operation log")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "renamed", OutcomeRenamed.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown(9)", Outcome(9).String())
}

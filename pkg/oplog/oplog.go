// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package oplog records what a rename run did and renders the audit log
// that apply mode drops into the target directory.
package oplog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/plan"
)

// FilenamePrefix starts every log file name; the start timestamp follows.
const FilenamePrefix = "rename_log_"

// timestampLayout is shared by the log file name and the log header.
const timestampLayout = "20060102_150405"

// 🏷️ Outcome classifies what happened to a single planned rename.
type Outcome int

const (
	// OutcomeRenamed means the file now has its new name.
	OutcomeRenamed Outcome = iota

	// OutcomeSkipped means nothing was attempted, as in preview mode.
	OutcomeSkipped

	// OutcomeFailed means the rename could not run: a collision, a
	// destination appearing at the last moment, or an OS error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRenamed:
		return "renamed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// 📄 Record is the result of one planned rename.
type Record struct {
	Item    plan.Item
	Outcome Outcome
	Reason  string // empty unless the outcome needs explaining
}

// Line renders the record the way it appears in the log file.
func (r Record) Line() string {
	line := fmt.Sprintf("%s: %s -> %s", strings.ToUpper(r.Outcome.String()), r.Item.OriginalPath(), r.Item.NewPath())
	if r.Reason != "" {
		line += fmt.Sprintf(" (%s)", r.Reason)
	}
	return line
}

// 📦 Log collects the records of one run together with the settings that
// produced them.
type Log struct {
	StartedAt time.Time
	Dir       string
	Config    *config.Config
	Applied   bool
	Cancelled bool
	Records   []Record

	// WrittenPath is where the log file landed, empty until Write succeeds.
	WrittenPath string
}

// 🏭 New starts an empty log for a run over dir.
func New(dir string, cfg *config.Config, startedAt time.Time) *Log {
	return &Log{
		StartedAt: startedAt,
		Dir:       dir,
		Config:    cfg,
	}
}

// Add appends one record.
func (l *Log) Add(item plan.Item, outcome Outcome, reason string) {
	l.Records = append(l.Records, Record{Item: item, Outcome: outcome, Reason: reason})
}

// Counts tallies the records per outcome.
func (l *Log) Counts() (renamed, skipped, failed int) {
	for _, r := range l.Records {
		switch r.Outcome {
		case OutcomeRenamed:
			renamed++
		case OutcomeSkipped:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}
	return renamed, skipped, failed
}

// Filename returns the log file name for this run, derived from StartedAt.
func (l *Log) Filename() string {
	return FilenamePrefix + l.StartedAt.Format(timestampLayout) + ".txt"
}

// Path returns where the log file lands: inside the target directory.
func (l *Log) Path() string {
	return filepath.Join(l.Dir, l.Filename())
}

// 📝 Render produces the full text of the log file.
func (l *Log) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rename Operation Log - %s\n", l.StartedAt.Format(timestampLayout))
	fmt.Fprintf(&b, "Directory: %s\n", l.Dir)
	fmt.Fprintf(&b, "Replacement: %s\n", l.Config.DisplayReplacement())
	if l.Config.Prefix != "" {
		fmt.Fprintf(&b, "Prefix: '%s'\n", l.Config.Prefix)
	}
	if l.Config.Suffix != "" {
		fmt.Fprintf(&b, "Suffix: '%s'\n", l.Config.Suffix)
	}
	if l.Config.Recursive {
		b.WriteString("Recursive: yes\n")
	}
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	for _, r := range l.Records {
		b.WriteString(r.Line() + "\n")
	}

	renamed, skipped, failed := l.Counts()
	fmt.Fprintf(&b, "\nSummary: %d renamed, %d failed, %d skipped\n", renamed, failed, skipped)

	return b.String()
}

// 💾 Write saves the rendered log into the target directory and returns the
// path it wrote. Callers treat a failure here as a warning: the renames
// themselves have already happened.
func (l *Log) Write(ctx context.Context) (string, error) {
	path := l.Path()
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("writing operation log")

	if err := os.WriteFile(path, []byte(l.Render()), 0644); err != nil {
		return "", errors.Errorf("writing operation log: %w", err)
	}
	l.WrittenPath = path
	return path, nil
}

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

package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/plan"
	"github.com/walteh/renamerc/pkg/scan"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // base width for the original filename column
	labelWidth = 24 // width for summary labels
)

// 🎯 Logger renders run output for humans on the console and mirrors
// everything into zerolog for debugging.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger writing human output to console.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 Header logs the run header.
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message.
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message.
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message.
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message.
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 LogNewline logs a newline.
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Settings prints the target directory and the effective run settings.
func (l *Logger) Settings(dir string, cfg *config.Config) {
	l.mu.Lock()
	defer l.mu.Unlock()

	mode := "preview (dry run)"
	if cfg.Apply {
		mode = "apply"
	}
	recursive := "no"
	if cfg.Recursive {
		recursive = "yes"
	}

	l.printSetting("target", dir)
	l.printSetting("mode", mode)
	l.printSetting("recursive", recursive)
	l.printSetting("replace dots/spaces with", cfg.DisplayReplacement())
	if cfg.Prefix != "" {
		l.printSetting("prefix", fmt.Sprintf("'%s'", cfg.Prefix))
	}
	if cfg.Suffix != "" {
		l.printSetting("suffix", fmt.Sprintf("'%s'", cfg.Suffix))
	}

	l.zlog.Info().Str("dir", dir).Str("settings", cfg.String()).Bool("apply", cfg.Apply).Msg("run settings")
}

func (l *Logger) printSetting(label, value string) {
	fmt.Fprintf(l.console, "  %s %s\n",
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", labelWidth, label)),
		color.New(color.Bold).Sprint(value))
}

// 📊 ScanSummary prints what the scan saw and what the plan made of it.
func (l *Logger) ScanSummary(stats scan.Stats, p *plan.Plan) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s\n", color.New(color.Faint).Sprint("scan summary"))
	l.printCount("directories scanned", stats.DirsScanned)
	l.printCount("files scanned", stats.FilesScanned)
	l.printCount("hidden files skipped", stats.HiddenFiles)
	l.printCount("hidden folders skipped", stats.HiddenDirs)
	if stats.Ignored > 0 {
		l.printCount("ignored by pattern", stats.Ignored)
	}
	l.printCount("already clean", p.AlreadyClean)
	l.printCount("to rename", p.ToRename())

	l.zlog.Info().
		Int("dirs", stats.DirsScanned).
		Int("files", stats.FilesScanned).
		Int("to_rename", p.ToRename()).
		Msg("scan summary")
}

func (l *Logger) printCount(label string, n int) {
	fmt.Fprintf(l.console, "  %s %s\n",
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", labelWidth, label)),
		color.New(color.Bold).Sprint(fmt.Sprintf("%d", n)))
}

// 📝 PlanListing prints every planned rename and collision, grouped by
// directory relative to root.
func (l *Logger) PlanListing(root string, p *plan.Plan) {
	l.mu.Lock()
	defer l.mu.Unlock()

	type row struct {
		item      plan.Item
		collision bool
		reason    string
	}

	byDir := map[string][]row{}
	for _, item := range p.Items {
		byDir[item.Dir] = append(byDir[item.Dir], row{item: item})
	}
	for _, c := range p.Collisions {
		byDir[c.Dir] = append(byDir[c.Dir], row{item: c.Item, collision: true, reason: c.Reason})
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	fmt.Fprintln(l.console)
	for _, dir := range dirs {
		fmt.Fprintf(l.console, "%s\n", color.New(color.FgCyan).Sprintf("[%s]", relDir(root, dir)))
		for _, r := range byDir[dir] {
			if r.collision {
				fmt.Fprintf(l.console, "%s%s %-*s -> %s %s\n",
					strings.Repeat(" ", fileIndent),
					color.New(color.FgRed).Sprint("✗"),
					nameWidth, r.item.OriginalName,
					r.item.NewName,
					color.New(color.Faint).Sprint("("+r.reason+")"))
				continue
			}
			fmt.Fprintf(l.console, "%s%s %-*s -> %s\n",
				strings.Repeat(" ", fileIndent),
				color.New(color.FgCyan).Sprint("•"),
				nameWidth, r.item.OriginalName,
				r.item.NewName)
		}
		l.zlog.Debug().Str("dir", dir).Int("rows", len(byDir[dir])).Msg("listed directory")
	}
}

// 📝 ApplyHint tells the user how to re-run the same preview with --apply.
func (l *Logger) ApplyHint(dir string, cfg *config.Config) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s\n  %s\n",
		"To apply these changes, run the command again with --apply:",
		color.New(color.Bold).Sprint(buildApplyCommand(dir, cfg)))
}

// buildApplyCommand reconstructs the invocation, keeping only the flags
// that differ from their defaults.
func buildApplyCommand(dir string, cfg *config.Config) string {
	parts := []string{"renamerc", fmt.Sprintf("%q", dir)}
	if cfg.Replacement != config.DefaultReplacement {
		parts = append(parts, fmt.Sprintf("--replace=%q", cfg.Replacement))
	}
	if cfg.Prefix != "" {
		parts = append(parts, fmt.Sprintf("--prefix=%q", cfg.Prefix))
	}
	if cfg.Suffix != "" {
		parts = append(parts, fmt.Sprintf("--suffix=%q", cfg.Suffix))
	}
	for _, pattern := range cfg.IgnorePatterns {
		parts = append(parts, fmt.Sprintf("--ignore=%q", pattern))
	}
	if cfg.Recursive {
		parts = append(parts, "--recursive")
	}
	parts = append(parts, "--apply")
	return strings.Join(parts, " ")
}

// 📝 RunSummary prints the final tallies after an apply.
func (l *Logger) RunSummary(renamed, failed int, logPath string) {
	l.Successf("successfully renamed %d files", renamed)
	if failed > 0 {
		l.Warningf("failed to rename %d files", failed)
	}
	if logPath != "" {
		l.Infof("log file saved to: %s", logPath)
	}
}

// relDir renders dir relative to root, "." for the root itself.
func relDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "" {
		return dir
	}
	return rel
}

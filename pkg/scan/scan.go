// Package scan walks a target directory and collects the candidate files
// for a rename run, along with the name universe used for collision checks.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultMaxFiles bounds how many files a single scan will consider.
const DefaultMaxFiles = 10000

// 📄 Entry is one candidate file found during a scan.
type Entry struct {
	Dir  string // absolute directory holding the file
	Name string // base name, never a path
}

// Path returns the full path of the entry.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// 📊 Stats counts everything a scan saw, including what it skipped.
type Stats struct {
	DirsScanned  int
	FilesScanned int
	HiddenFiles  int
	HiddenDirs   int
	Ignored      int
}

// 📦 Result holds the outcome of a scan.
type Result struct {
	Root    string
	Entries []Entry

	// Existing maps each scanned directory to the set of names already
	// present in it: files, subdirectories, hidden and ignored entries
	// alike. Planning checks rename targets against this universe.
	Existing map[string]map[string]struct{}

	Stats Stats

	// Truncated is set when the scan stopped at the file limit.
	Truncated bool
}

// Exists reports whether dir already contains an entry called name.
func (r *Result) Exists(dir, name string) bool {
	_, ok := r.Existing[dir][name]
	return ok
}

// 🔧 Options controls a scan.
type Options struct {
	Recursive      bool
	IgnorePatterns []string
	MaxFiles       int // 0 means DefaultMaxFiles
}

// 🔍 Scan collects candidate files under root. Hidden files are counted and
// skipped, hidden directories are pruned entirely, and entries are returned
// in deterministic (directory, name) order.
func Scan(ctx context.Context, root string, opts Options) (*Result, error) {
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = DefaultMaxFiles
	}

	s := &scanner{
		opts: opts,
		root: root,
		res: &Result{
			Root:     root,
			Existing: map[string]map[string]struct{}{},
		},
	}

	var err error
	if opts.Recursive {
		err = s.walk(ctx)
	} else {
		err = s.readRoot(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(s.res.Entries, func(i, j int) bool {
		a, b := s.res.Entries[i], s.res.Entries[j]
		if a.Dir != b.Dir {
			return a.Dir < b.Dir
		}
		return a.Name < b.Name
	})

	zerolog.Ctx(ctx).Debug().
		Int("files_scanned", s.res.Stats.FilesScanned).
		Int("candidates", len(s.res.Entries)).
		Bool("truncated", s.res.Truncated).
		Msg("scan complete")

	return s.res, nil
}

type scanner struct {
	opts Options
	root string
	res  *Result
}

// readRoot scans only the immediate entries of the root directory.
func (s *scanner) readRoot(ctx context.Context) error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return errors.Errorf("reading directory %s: %w", s.root, err)
	}
	s.res.Stats.DirsScanned = 1

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		s.record(s.root, name)

		if entry.IsDir() {
			if isHidden(name) {
				s.res.Stats.HiddenDirs++
			}
			continue
		}
		if !s.visitFile(s.root, name, name) {
			break
		}
	}
	return nil
}

// walk scans the whole tree under root, pruning hidden directories.
func (s *scanner) walk(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return errors.Errorf("reading directory %s: %w", path, err)
			}
			log.Warn().Str("path", path).Err(err).Msg("skipping unreadable path")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != s.root {
				s.record(filepath.Dir(path), name)
				if isHidden(name) {
					s.res.Stats.HiddenDirs++
					return fs.SkipDir
				}
			}
			s.res.Stats.DirsScanned++
			return nil
		}

		dir := filepath.Dir(path)
		s.record(dir, name)

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			rel = name
		}
		if !s.visitFile(dir, name, filepath.ToSlash(rel)) {
			return fs.SkipAll
		}
		return nil
	})
}

// visitFile counts name and collects it as a candidate unless it is hidden
// or ignored. It reports false once the file limit is exceeded.
func (s *scanner) visitFile(dir, name, rel string) bool {
	s.res.Stats.FilesScanned++
	if s.res.Stats.FilesScanned > s.opts.MaxFiles {
		s.res.Stats.FilesScanned = s.opts.MaxFiles
		s.res.Truncated = true
		return false
	}

	if isHidden(name) {
		s.res.Stats.HiddenFiles++
		return true
	}
	if s.ignored(name, rel) {
		s.res.Stats.Ignored++
		return true
	}

	s.res.Entries = append(s.res.Entries, Entry{Dir: dir, Name: name})
	return true
}

// ignored matches name and the root-relative path against the ignore globs.
func (s *scanner) ignored(name, rel string) bool {
	for _, pattern := range s.opts.IgnorePatterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// record adds name to the existing-name universe of dir.
func (s *scanner) record(dir, name string) {
	names, ok := s.res.Existing[dir]
	if !ok {
		names = map[string]struct{}{}
		s.res.Existing[dir] = names
	}
	names[name] = struct{}{}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Package scan discovers candidate files for an organize run.
//
// The scanner is the traversal collaborator: it yields an ordered, finite
// sequence of file entries. Single-level scans use directory read order
// (lexicographic); recursive scans walk depth-first in lexical order, so
// repeated scans of an unchanged tree produce identical sequences.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/logging"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/planner"
)

// Scanner walks a directory tree and produces file entries.
type Scanner struct {
	categories map[string]bool
	exclude    map[string]bool
	logger     zerolog.Logger
}

// New creates a Scanner. categories is the set of known category folder
// names (used to mark entries already inside a category folder); exclude
// lists absolute file paths to skip, typically the run's own log files when
// they live under the scanned root.
func New(categories []string, exclude ...string) *Scanner {
	s := &Scanner{
		categories: make(map[string]bool, len(categories)),
		exclude:    make(map[string]bool, len(exclude)),
		logger:     logging.GetLogger("scan"),
	}
	for _, c := range categories {
		s.categories[c] = true
	}
	for _, path := range exclude {
		if path != "" {
			s.exclude[filepath.Clean(path)] = true
		}
	}
	return s
}

// Scan returns the ordered entries under root. Only regular files are
// yielded; directories, symlinks and other special files are ignored.
func (s *Scanner) Scan(root string, recursive bool) ([]planner.FileEntry, error) {
	root = filepath.Clean(root)

	var entries []planner.FileEntry
	add := func(path string) {
		if s.exclude[path] {
			s.logger.Debug().Str("path", path).Msg("excluded from scan")
			return
		}
		entries = append(entries, s.entryFor(root, path))
	}

	if !recursive {
		dirEntries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
		}
		for _, de := range dirEntries {
			if de.Type().IsRegular() {
				add(filepath.Join(root, de.Name()))
			}
		}
		return entries, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			add(path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return entries, nil
}

// entryFor builds a FileEntry for an absolute path under root.
func (s *Scanner) entryFor(root, path string) planner.FileEntry {
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	inCategoryDir := filepath.Dir(dir) == root && s.categories[filepath.Base(dir)]

	return planner.FileEntry{
		Path:          path,
		Dir:           dir,
		Name:          name,
		Ext:           planner.ExtFor(name),
		InCategoryDir: inCategoryDir,
	}
}

package planner

import (
	"fmt"
	"path/filepath"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
)

// Resolver produces collision-free destination filenames. It holds the
// per-run claimed set: every name it hands out is recorded so no two
// operations in the same run can target the same path. Construct one per
// run and discard it when the run ends. Not safe for concurrent use; runs
// are strictly sequential.
type Resolver struct {
	fs fsops.FS

	// claimed maps a cleaned destination directory to the set of filenames
	// already assigned there during this run.
	claimed map[string]map[string]bool
}

// NewResolver creates a Resolver with an empty claimed set.
func NewResolver(fs fsops.FS) *Resolver {
	return &Resolver{
		fs:      fs,
		claimed: make(map[string]map[string]bool),
	}
}

// Resolve returns a destination filename in destDir that collides neither
// with a file on disk nor with a name claimed earlier in this run. Suffixes
// are assigned monotonically: the desired name first, then "stem (1).ext",
// "stem (2).ext", and so on. The source path itself is exempt from the
// on-disk check, so a correctly placed file resolves to its own name.
// The winning name is claimed before it is returned.
func (r *Resolver) Resolve(destDir, desired, source string) (string, error) {
	dir := filepath.Clean(destDir)
	stem, ext := splitName(desired)

	for idx := 0; ; idx++ {
		candidate := desired
		if idx > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, idx, ext)
		}

		if r.claimed[dir][candidate] {
			continue
		}

		candidatePath := filepath.Join(dir, candidate)
		if candidatePath != source {
			exists, err := r.fs.Exists(candidatePath)
			if err != nil {
				return "", fmt.Errorf("failed to check destination %s: %w", candidatePath, err)
			}
			if exists {
				continue
			}
		}

		r.claim(dir, candidate)
		return candidate, nil
	}
}

// claim records a (directory, filename) pair. Claiming the same pair twice
// would mean the resolver handed out a duplicate destination, which the
// Resolve loop rules out.
func (r *Resolver) claim(dir, name string) {
	names, ok := r.claimed[dir]
	if !ok {
		names = make(map[string]bool)
		r.claimed[dir] = names
	}
	if names[name] {
		panic(fmt.Sprintf("planner: duplicate destination claimed: %s", filepath.Join(dir, name)))
	}
	names[name] = true
}

// Claimed reports whether the (directory, filename) pair has been assigned
// during this run.
func (r *Resolver) Claimed(dir, name string) bool {
	return r.claimed[filepath.Clean(dir)][name]
}

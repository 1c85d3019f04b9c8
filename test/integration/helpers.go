package integration

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/clock"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/engine"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
)

// newEngine builds an engine against the real filesystem with a fixed clock.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
}

// populate creates files under root with their name as content. Parent
// directories are created as needed.
func populate(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
}

// tree returns every regular file under root as a sorted slice of
// root-relative paths.
func tree(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

// run executes one organize run and fails the test on error.
func run(t *testing.T, req *engine.RunRequest) *engine.RunResult {
	t.Helper()
	result, err := newEngine().Run(context.Background(), req)
	require.NoError(t, err)
	return result
}

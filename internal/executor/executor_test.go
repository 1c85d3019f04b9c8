package executor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/fsops"
	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/planner"
)

func opFor(root, name, category string) planner.PlannedOperation {
	return planner.PlannedOperation{
		Source:   filepath.Join(root, name),
		DestDir:  filepath.Join(root, category),
		DestName: name,
		Category: category,
	}
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("dry run simulates without touching the filesystem", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "a.txt")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

		e := New(fsops.NewRealFS(), true)
		outcome := e.Execute(opFor(root, "a.txt", "Documents"))

		assert.Equal(t, StatusSimulated, outcome.Status)
		assert.Empty(t, outcome.Detail)

		_, err := os.Lstat(src)
		assert.NoError(t, err, "source must remain")
		_, err = os.Lstat(filepath.Join(root, "Documents"))
		assert.True(t, os.IsNotExist(err), "destination directory must not be created")
	})

	t.Run("real run applies the move", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0644))

		e := New(fsops.NewRealFS(), false)
		outcome := e.Execute(opFor(root, "a.txt", "Documents"))

		require.Equal(t, StatusApplied, outcome.Status)

		_, err := os.Lstat(filepath.Join(root, "a.txt"))
		assert.True(t, os.IsNotExist(err))
		data, err := os.ReadFile(filepath.Join(root, "Documents", "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("vanished source is skipped", func(t *testing.T) {
		root := t.TempDir()

		e := New(fsops.NewRealFS(), false)
		outcome := e.Execute(opFor(root, "ghost.txt", "Documents"))

		assert.Equal(t, StatusSkipped, outcome.Status)
		assert.Equal(t, "source no longer exists", outcome.Detail)
	})

	t.Run("uncreatable destination directory fails, source retained", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "a.txt")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
		// A file where the category directory should go.
		require.NoError(t, os.WriteFile(filepath.Join(root, "Documents"), []byte("not a dir"), 0644))

		e := New(fsops.NewRealFS(), false)
		outcome := e.Execute(opFor(root, "a.txt", "Documents"))

		assert.Equal(t, StatusFailed, outcome.Status)
		assert.NotEmpty(t, outcome.Detail)
		_, err := os.Lstat(src)
		assert.NoError(t, err, "source must remain after failure")
	})
}

func TestExecutor_ExecuteAll(t *testing.T) {
	t.Run("failure does not abort the batch", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "Broken"), []byte("not a dir"), 0644))

		plan := planner.NewPlan()
		plan.AddOperation(planner.PlannedOperation{
			Source: filepath.Join(root, "a.txt"), DestDir: filepath.Join(root, "Broken"),
			DestName: "a.txt", Category: "Broken", Seq: 0,
		})
		plan.AddOperation(planner.PlannedOperation{
			Source: filepath.Join(root, "b.txt"), DestDir: filepath.Join(root, "Documents"),
			DestName: "b.txt", Category: "Documents", Seq: 1,
		})

		outcomes := New(fsops.NewRealFS(), false).ExecuteAll(plan)

		require.Len(t, outcomes, 2)
		assert.Equal(t, StatusFailed, outcomes[0].Status)
		assert.Equal(t, StatusApplied, outcomes[1].Status)
	})

	t.Run("outcomes preserve plan order", func(t *testing.T) {
		root := t.TempDir()
		names := []string{"c.txt", "a.txt", "b.txt"}
		plan := planner.NewPlan()
		for i, name := range names {
			require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(name), 0644))
			plan.AddOperation(planner.PlannedOperation{
				Source: filepath.Join(root, name), DestDir: filepath.Join(root, "Documents"),
				DestName: name, Category: "Documents", Seq: i,
			})
		}

		outcomes := New(fsops.NewRealFS(), false).ExecuteAll(plan)

		require.Len(t, outcomes, 3)
		for i, name := range names {
			assert.Equal(t, name, outcomes[i].Op.DestName)
			assert.Equal(t, StatusApplied, outcomes[i].Status)
		}
	})
}

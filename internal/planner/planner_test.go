package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
)

func entryFor(dir, name string) FileEntry {
	return FileEntry{
		Path: dir + "/" + name,
		Dir:  dir,
		Name: name,
		Ext:  ExtFor(name),
	}
}

func TestMovePlanner_Plan(t *testing.T) {
	t.Run("classifies and resolves in order", func(t *testing.T) {
		p := NewMovePlanner(newFakeFS(), "/root", extmap.New())

		plan, err := p.Plan([]FileEntry{
			entryFor("/root", "photo.JPG"),
			entryFor("/root", "report.pdf"),
			entryFor("/root", "notes"),
		})
		require.NoError(t, err)
		require.Len(t, plan.Operations, 3)

		assert.Equal(t, "/root/Images", plan.Operations[0].DestDir)
		assert.Equal(t, "photo.JPG", plan.Operations[0].DestName)
		assert.Equal(t, "Images", plan.Operations[0].Category)
		assert.Equal(t, "/root/Documents", plan.Operations[1].DestDir)
		assert.Equal(t, "/root/Others", plan.Operations[2].DestDir)

		for i, op := range plan.Operations {
			assert.Equal(t, i, op.Seq)
		}
	})

	t.Run("two files with identical desired name", func(t *testing.T) {
		p := NewMovePlanner(newFakeFS(), "/root", extmap.New())

		plan, err := p.Plan([]FileEntry{
			entryFor("/root", "a.txt"),
			entryFor("/root/sub", "a.txt"),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"/root/Documents/a.txt",
			"/root/Documents/a (1).txt",
		}, plan.Dests())
	})

	t.Run("pre-existing destination never overwritten", func(t *testing.T) {
		fs := newFakeFS()
		fs.setExists("/root/Documents/report.pdf")
		p := NewMovePlanner(fs, "/root", extmap.New())

		plan, err := p.Plan([]FileEntry{entryFor("/root", "report.pdf")})
		require.NoError(t, err)
		require.Len(t, plan.Operations, 1)
		assert.Equal(t, "/root/Documents/report (1).pdf", plan.Operations[0].Dest())
	})

	t.Run("entry already in category folder is skipped", func(t *testing.T) {
		p := NewMovePlanner(newFakeFS(), "/root", extmap.New())

		plan, err := p.Plan([]FileEntry{
			entryFor("/root/Documents", "report.pdf"),
			entryFor("/root", "photo.jpg"),
		})
		require.NoError(t, err)
		require.Len(t, plan.Operations, 1)
		assert.Equal(t, "/root/photo.jpg", plan.Operations[0].Source)
		assert.Equal(t, 0, plan.Operations[0].Seq)
	})

	t.Run("file of another category inside a category folder still moves", func(t *testing.T) {
		p := NewMovePlanner(newFakeFS(), "/root", extmap.New())

		plan, err := p.Plan([]FileEntry{entryFor("/root/Images", "notes.txt")})
		require.NoError(t, err)
		require.Len(t, plan.Operations, 1)
		assert.Equal(t, "/root/Documents/notes.txt", plan.Operations[0].Dest())
	})

	t.Run("planning is deterministic", func(t *testing.T) {
		entries := []FileEntry{
			entryFor("/root", "a.txt"),
			entryFor("/root/sub", "a.txt"),
			entryFor("/root", "photo.jpg"),
			entryFor("/root", "notes"),
		}

		first, err := NewMovePlanner(newFakeFS(), "/root", extmap.New()).Plan(entries)
		require.NoError(t, err)
		second, err := NewMovePlanner(newFakeFS(), "/root", extmap.New()).Plan(entries)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("destinations within a run are distinct", func(t *testing.T) {
		entries := []FileEntry{
			entryFor("/root", "a.txt"),
			entryFor("/root/x", "a.txt"),
			entryFor("/root/y", "a.txt"),
			entryFor("/root/z", "a (1).txt"),
		}

		plan, err := NewMovePlanner(newFakeFS(), "/root", extmap.New()).Plan(entries)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, dest := range plan.Dests() {
			assert.False(t, seen[dest], "duplicate destination %s", dest)
			seen[dest] = true
		}
	})

	t.Run("override category creates its own folder", func(t *testing.T) {
		m := extmap.New(extmap.Override{Ext: ".blend", Category: "3D"})
		p := NewMovePlanner(newFakeFS(), "/root", m)

		plan, err := p.Plan([]FileEntry{entryFor("/root", "scene.blend")})
		require.NoError(t, err)
		require.Len(t, plan.Operations, 1)
		assert.Equal(t, "/root/3D/scene.blend", plan.Operations[0].Dest())
	})
}

package planner

import (
	"strings"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
)

// FileEntry is a discovered candidate file. Entries are created once by the
// traversal collaborator and never mutated.
type FileEntry struct {
	// Path is the absolute source path.
	Path string

	// Dir is the directory containing the file (absolute).
	Dir string

	// Name is the base name of the file.
	Name string

	// Ext is the derived extension, lowercase with leading dot, or "" for
	// extensionless files.
	Ext string

	// InCategoryDir reports whether the file already sits directly inside
	// one of the known category folders under the run root.
	InCategoryDir bool
}

// ExtFor derives the extension from a base name: the text after the last
// dot, lowercased, with the dot included. A name with no dot, or a dotfile
// like ".bashrc" with no further dot, is extensionless.
func ExtFor(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(name[idx:])
}

// splitName splits a base name into stem and extension using the same rule
// as ExtFor, preserving the original case of both parts.
func splitName(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// Classifier assigns a category to a file entry. Pure, no filesystem access.
type Classifier struct {
	extensions *extmap.Map
}

// NewClassifier creates a Classifier backed by the given extension map.
func NewClassifier(m *extmap.Map) *Classifier {
	return &Classifier{extensions: m}
}

// Classify returns the category folder name for the entry.
func (c *Classifier) Classify(e FileEntry) string {
	return c.extensions.CategoryFor(e.Ext)
}

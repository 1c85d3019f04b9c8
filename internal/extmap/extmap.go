// Package extmap maps file extensions to category folder names.
//
// A Map is built once per run by merging the built-in default table with
// optional user overrides, and is immutable afterwards. Lookup is total:
// any extension without an entry, and the empty extension, resolve to the
// reserved Others category.
package extmap

import (
	"sort"
	"strings"
)

// CategoryOthers is the reserved fallback category for unmapped extensions.
const CategoryOthers = "Others"

// defaultTable is the built-in extension to category mapping.
var defaultTable = map[string]string{
	// images
	".jpg": "Images", ".jpeg": "Images", ".png": "Images",
	".gif": "Images", ".bmp": "Images", ".svg": "Images",
	// documents
	".pdf": "Documents", ".doc": "Documents", ".docx": "Documents",
	".odt": "Documents", ".txt": "Documents", ".rtf": "Documents",
	// spreadsheets
	".xls": "Spreadsheets", ".xlsx": "Spreadsheets", ".csv": "Spreadsheets",
	// presentations
	".ppt": "Presentations", ".pptx": "Presentations",
	// archives
	".zip": "Archives", ".tar": "Archives", ".gz": "Archives",
	".rar": "Archives", ".7z": "Archives",
	// media
	".mp4": "Video", ".mkv": "Video", ".mov": "Video", ".avi": "Video",
	".mp3": "Audio", ".wav": "Audio", ".flac": "Audio",
	// code
	".py": "Code", ".js": "Code", ".ts": "Code", ".java": "Code",
	".c": "Code", ".cpp": "Code", ".cs": "Code", ".html": "Code", ".css": "Code",
}

// Override is a single user-supplied extension to category entry.
type Override struct {
	// Ext is the extension including the leading dot, lowercase.
	Ext string

	// Category is the destination folder name.
	Category string
}

// Map resolves file extensions to category names.
type Map struct {
	entries map[string]string
}

// New builds a Map from the default table merged with the given overrides.
// Overrides take precedence over defaults; on duplicate extensions the last
// override wins.
func New(overrides ...Override) *Map {
	entries := make(map[string]string, len(defaultTable)+len(overrides))
	for ext, category := range defaultTable {
		entries[ext] = category
	}
	for _, o := range overrides {
		entries[o.Ext] = o.Category
	}
	return &Map{entries: entries}
}

// CategoryFor returns the category for the given extension. The extension is
// normalized to lowercase before lookup; unmapped or empty extensions return
// CategoryOthers.
func (m *Map) CategoryFor(ext string) string {
	if ext == "" {
		return CategoryOthers
	}
	if category, ok := m.entries[strings.ToLower(ext)]; ok {
		return category
	}
	return CategoryOthers
}

// Categories returns the distinct category names in the map, sorted, always
// including CategoryOthers.
func (m *Map) Categories() []string {
	seen := map[string]bool{CategoryOthers: true}
	for _, category := range m.entries {
		seen[category] = true
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Entries returns a copy of the extension table, for display purposes.
func (m *Map) Entries() map[string]string {
	out := make(map[string]string, len(m.entries))
	for ext, category := range m.entries {
		out[ext] = category
	}
	return out
}

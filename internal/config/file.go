package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pranathipanikonda07/syntecHUB-File-Organizer-Script/internal/extmap"
)

// File is the optional YAML config file. Every field is optional; command
// line flags take precedence over values set here.
type File struct {
	// Recursive sets the default for the --recursive flag.
	Recursive *bool `yaml:"recursive"`

	// DryRun sets the default for the --dry-run flag.
	DryRun *bool `yaml:"dry_run"`

	// Log overrides the default CSV audit log path.
	Log string `yaml:"log"`

	// LogHuman overrides the default human-readable log path.
	LogHuman string `yaml:"log_human"`

	// Categories maps extensions to category folders, merged over the
	// built-in defaults the same way an override map file is.
	Categories map[string]string `yaml:"categories"`
}

// LoadFile reads the config file at path. A missing file yields an empty
// config when required is false, an error otherwise.
func LoadFile(path string, required bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &f, nil
}

// Overrides converts the Categories section into extension map overrides,
// sorted by extension so merges are deterministic. Entries with an empty
// normalized extension or empty category are dropped.
func (f *File) Overrides() []extmap.Override {
	overrides := make([]extmap.Override, 0, len(f.Categories))
	for ext, category := range f.Categories {
		ext = extmap.NormalizeExt(ext)
		if ext == "" || category == "" {
			continue
		}
		overrides = append(overrides, extmap.Override{Ext: ext, Category: category})
	}
	sort.Slice(overrides, func(i, j int) bool { return overrides[i].Ext < overrides[j].Ext })
	return overrides
}

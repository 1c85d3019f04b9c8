// Package config manages organizer configuration and filesystem paths.
//
// The data root defaults to an XDG state directory and holds the audit
// logs and the optional config file. It can be relocated with the
// ORGANIZER_ROOT environment variable.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains the filesystem paths used by the organizer.
type Paths struct {
	// Root is the base directory for organizer data.
	Root string

	// CSVLog is the default machine-readable audit log.
	CSVLog string

	// TextLog is the default human-readable audit log.
	TextLog string

	// Config is the default config file location.
	Config string
}

// DefaultPaths returns the default paths. ORGANIZER_ROOT overrides the
// root directory; otherwise the XDG state home is used.
func DefaultPaths() *Paths {
	root := os.Getenv("ORGANIZER_ROOT")
	if root == "" {
		root = filepath.Join(xdg.StateHome, "organizer")
	}

	return &Paths{
		Root:    root,
		CSVLog:  filepath.Join(root, "organizer_log.csv"),
		TextLog: filepath.Join(root, "organizer_log.txt"),
		Config:  filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates the root directory if it does not exist.
func (p *Paths) EnsureDirectories() error {
	return os.MkdirAll(p.Root, 0755)
}

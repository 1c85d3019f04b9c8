// Package fsops provides filesystem operations with safety guarantees.
//
// All filesystem mutations go through the FS interface so the planner and
// executor can be tested against fakes. Move never leaves a partial state
// visible: either the destination fully exists or the source is untouched.
package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// ReadDir reads the named directory, returning its entries sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)

	// Move relocates a file from src to dst, falling back to
	// copy-verify-remove when a plain rename crosses filesystem boundaries.
	Move(src, dst string) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Lstat returns file info without following symlinks.
func (f *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Exists checks if a path exists.
func (f *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MkdirAll creates a directory and all parent directories.
func (f *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadDir reads the named directory, returning its entries sorted by name.
func (f *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile reads the entire contents of a file.
func (f *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Move relocates src to dst. A same-volume move is a single atomic rename.
// Across volumes it copies to a temp file next to dst, syncs, renames into
// place, verifies the size, and only then removes the source; any failure
// cleans up the temp file and leaves the source intact.
func (f *RealFS) Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	return f.moveAcrossDevices(src, dst)
}

// isCrossDevice reports whether err is a rename failure caused by src and
// dst living on different filesystems.
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return errors.Is(linkErr.Err, syscall.EXDEV)
}

func (f *RealFS) moveAcrossDevices(src, dst string) error {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot move non-regular file %q across filesystems", src)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	// Stage in the destination directory so the final rename is atomic.
	tmpFile, err := os.CreateTemp(filepath.Dir(dst), ".organizer-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmpFile, srcFile)
	if err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if written != srcInfo.Size() {
		return fmt.Errorf("short copy: wrote %d of %d bytes", written, srcInfo.Size())
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Destination is in place. Keep it even if removing the source fails.
	tmpFile = nil
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("copied but failed to remove source: %w", err)
	}

	return nil
}

// IsNotExist reports whether err indicates a missing file or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

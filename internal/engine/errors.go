package engine

import "errors"

var (
	// ErrRootNotFound indicates the requested root path does not exist.
	ErrRootNotFound = errors.New("root path does not exist")

	// ErrNotDirectory indicates the requested root path is not a directory.
	ErrNotDirectory = errors.New("root path is not a directory")
)

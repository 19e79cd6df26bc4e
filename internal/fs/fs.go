// Package fs provides the filesystem operations vgen performs.
//
// The main types are:
//   - [FS]: interface for filesystem operations
//   - [Real]: production implementation using [os] package
//
// Config files are read through [FS.ReadFile]. Generated tables are written
// with [FS.WriteFileAtomic] so a consuming build never compiles a partially
// written fixture.
package fs

import "os"

// FS defines the filesystem operations used by the CLI.
//
// Paths use OS semantics (like the os package and path/filepath), not the
// slash-separated paths used by the standard library io/fs package.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// Exists reports whether path exists.
	// Returns (false, nil) if it does not, (false, err) for other errors.
	Exists(path string) (bool, error)

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	MkdirAll(path string, perm os.FileMode) error

	// WriteFileAtomic replaces path with data. Readers observe either the old
	// content or the new content, never a mix. The file ends up with perm
	// regardless of umask.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error
}

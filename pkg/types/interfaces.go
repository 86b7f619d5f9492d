package types

import (
	"io/fs"
)

// FS is the filesystem surface the template core reads and writes through.
// Production code uses the OS; tests use an in-memory afero filesystem.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

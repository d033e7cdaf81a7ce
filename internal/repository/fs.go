package repository

import "github.com/spf13/afero"

// FileSystemRepository defines the interface for filesystem operations.
type FileSystemRepository interface {
	afero.Fs
}

// NewOsFileSystem returns the host filesystem.
func NewOsFileSystem() FileSystemRepository {
	return afero.NewOsFs()
}

package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the set of filesystem operations a link run performs
type FS interface {
	// Stat follows symlinks
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow symlinks
	Lstat(name string) (fs.FileInfo, error)
	Glob(pattern string) ([]string, error)
	Symlink(oldname, newname string) error
	Remove(name string) error
}

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (o *osFS) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func (o *osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}

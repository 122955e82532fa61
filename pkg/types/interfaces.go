package types

import (
	"io/fs"
)

// FS defines the filesystem operations nominal needs
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Rename(oldpath, newpath string) error

	// Lstat must not follow a trailing symlink. Implementations without
	// symlink support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// PathStyler decorates text that denotes path for terminal display.
// The styling is chosen from the filesystem entry at path, so text may be
// only a suffix of path.
type PathStyler interface {
	Style(path, text string) string
}

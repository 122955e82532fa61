package paths

import (
	"errors"
	"io/fs"

	"github.com/vivienm/nominal/pkg/types"
)

// Exists tests whether path names a filesystem entry.
//
// A trailing symbolic link is not followed, so a dangling link exists.
// Errors other than "not found" are returned to the caller.
func Exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

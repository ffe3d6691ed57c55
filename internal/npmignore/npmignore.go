// Package npmignore temporarily hides the package's .npmignore so npm
// pack falls back to the files allowlist, and restores it afterwards.
package npmignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Name is the file hidden around packaging.
const Name = ".npmignore"

// backupSuffix is appended while the file is hidden.
const backupSuffix = ".bak"

// Hide renames dir/.npmignore to dir/.npmignore.bak. A no-op when the
// file is already absent, so repeated runs are safe.
func Hide(dir string) error {
	return move(filepath.Join(dir, Name), filepath.Join(dir, Name+backupSuffix))
}

// Restore renames dir/.npmignore.bak back to dir/.npmignore. A no-op
// when no backup exists.
func Restore(dir string) error {
	return move(filepath.Join(dir, Name+backupSuffix), filepath.Join(dir, Name))
}

func move(from, to string) error {
	err := os.Rename(from, to)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

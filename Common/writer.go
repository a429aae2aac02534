package common

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultFileMode fs.FileMode = 0o644

// WriteUTF8 replaces the content at path with text. text comes from a Go
// decode, so it is already UTF-8 and carries no BOM.
//
// Regular files are written to a temporary file next to the symlink-resolved
// destination and renamed over it, so the destination never holds a partial
// write. An existing destination must be writable by the caller. Devices and
// other non-regular files are written directly.
func WriteUTF8(path, text string) error {
	dest := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		dest = resolved
	}

	mode := defaultFileMode
	fi, err := os.Stat(dest)
	switch {
	case err == nil && !fi.Mode().IsRegular():
		return writeDirect(dest, text)
	case err == nil:
		mode = fi.Mode().Perm()
		f, err := os.OpenFile(dest, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		_ = f.Close()
	case !os.IsNotExist(err):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	return replaceFile(dest, text, mode)
}

func writeDirect(path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err = f.WriteString(text); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func replaceFile(path, text string, mode fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

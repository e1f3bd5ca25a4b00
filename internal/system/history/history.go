// Released under an MIT license. See LICENSE.

// Package history persists interactive input between sessions.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const name = ".lisp_history"

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	if err = lock(f, false); err != nil {
		return err
	}
	defer unlock(f) //nolint:errcheck

	_, err = read(f)

	return err
}

// Save passes a truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path(), os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if err = lock(f, true); err != nil {
		f.Close()

		return err
	}

	err = f.Truncate(0)
	if err == nil {
		_, err = write(f)
	}

	unlock(f) //nolint:errcheck

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

func path() string {
	return filepath.Join(os.Getenv("HOME"), name)
}

// Released under an MIT license. See LICENSE.

// Package history loads and saves the line editor's history file.
package history

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

const fileName = ".rational_history"

// Path is the history file location. It is a variable so tests can move it.
var Path = func() string { //nolint:gochecknoglobals
	return filepath.Join(os.Getenv("HOME"), fileName)
}

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := os.Open(Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save passes a truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := os.Create(Path())
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

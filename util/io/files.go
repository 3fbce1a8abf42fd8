package io

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// DirExists returns if a directory exists at the given path, following symlinks.
func DirExists(name string) (bool, error) {
	stat, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return stat.IsDir(), nil
}

// FileExists returns if a file exists at the given path, following symlinks.
func FileExists(name string) (bool, error) {
	stat, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !stat.IsDir(), nil
}

// WithFile opens the file `name` for reading, passes it to `fn` and
// closes it again before returning, whether or not `fn` succeeded.
func WithFile(name string, fn func(r io.Reader) error) (err error) {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(file)
}

// ReadAll reads the whole file `name` through WithFile.
func ReadAll(name string) ([]byte, error) {
	var content []byte
	err := WithFile(name, func(r io.Reader) error {
		var err error
		content, err = io.ReadAll(r)
		return err
	})
	return content, err
}

// Package fsutil provides file writing helpers used by the CLI.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly created files.
const DefaultFileMode os.FileMode = 0o644

// ErrExists is returned by CreateFile when the target exists and
// overwriting was not requested.
var ErrExists = errors.New("file already exists")

// WriteAtomic replaces path with content. The content is written to a temp
// file in the same directory, synced, and renamed over the target, so
// readers see either the old or the new file. If mode is 0, DefaultFileMode
// is used.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmpPath, err := writeTemp(path, content, mode)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// CreateFile writes content to path atomically. When path already exists it
// returns ErrExists unless overwrite is set. The returned bool reports
// whether an existing file was replaced.
func CreateFile(ctx context.Context, path string, content []byte, mode os.FileMode, overwrite bool) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("%s: is a directory", path)
	case err == nil && !overwrite:
		return false, fmt.Errorf("%w: %s", ErrExists, path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	replaced := err == nil
	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return replaced, nil
}

// writeTemp writes content to a new temp file next to path and returns its name.
// The temp file is removed on failure.
func writeTemp(path string, content []byte, mode os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(step string, err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%s temp file: %w", step, err)
	}

	if _, err := tmp.Write(content); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return tmpPath, nil
}

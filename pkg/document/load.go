package document

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIsDirectory indicates the input path is a directory, not a file.
	ErrIsDirectory = errors.New("is a directory")
)

// Load reads the whole file at path and returns its Document.
// A missing file is reported with ErrNotFound; any other failure to read an
// existing file is returned wrapped as-is.
func Load(ctx context.Context, path string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load %s: %w", path, ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return New(path, content), nil
}

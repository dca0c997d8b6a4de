package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Target is one file scheduled for checking.
type Target struct {
	// Path is the path as shown to the user.
	Path string

	// FullPath is the path used to open the file.
	FullPath string
}

// Discover expands opts.Paths into the list of files to check.
//
// Paths keep the order they were given in. A directory is replaced by the
// Markdown files below it, sorted by path. A path that does not exist is kept
// so the run can report it. A file named more than once is checked each time;
// directory expansion skips files that were already listed.
func Discover(ctx context.Context, opts Options) ([]Target, error) {
	extensions := opts.effectiveExtensions()

	seen := make(map[string]struct{})
	var targets []Target

	// Named inputs are always checked, once per mention. Files found by
	// expanding a directory are skipped when already listed.
	addNamed := func(target Target) {
		seen[filepath.Clean(target.FullPath)] = struct{}{}
		targets = append(targets, target)
	}
	addExpanded := func(target Target) {
		key := filepath.Clean(target.FullPath)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		targets = append(targets, target)
	}

	for _, inputPath := range opts.Paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		fullPath := resolvePath(opts.WorkingDir, inputPath)

		info, err := os.Stat(fullPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				addNamed(Target{Path: inputPath, FullPath: fullPath})
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			addNamed(Target{Path: inputPath, FullPath: fullPath})
			continue
		}

		discovered, err := walkDirectory(ctx, inputPath, fullPath, extensions, opts.ExcludeGlobs)
		if err != nil {
			return nil, err
		}
		for _, target := range discovered {
			addExpanded(target)
		}
	}

	return targets, nil
}

func resolvePath(workDir, path string) string {
	if workDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// walkDirectory returns the Markdown files below root, sorted by path.
// displayRoot is the directory as the user typed it.
func walkDirectory(
	ctx context.Context,
	displayRoot string,
	root string,
	extensions []string,
	excludes []string,
) ([]Target, error) {
	var targets []Target

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && matchesAny(relPath, excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if !hasMatchingExtension(path, extensions) || matchesAny(relPath, excludes) {
			return nil
		}

		targets = append(targets, Target{
			Path:     filepath.Join(displayRoot, relPath),
			FullPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", displayRoot, err)
	}

	slices.SortFunc(targets, func(a, b Target) int {
		return strings.Compare(a.Path, b.Path)
	})

	return targets, nil
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against a glob pattern.
// It supports patterns like "*.md", "drafts/**" and "**/vendor".
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		if prefix == "**" || prefix == "" {
			return true
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
		for _, part := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, part); err == nil && matched {
				return true
			}
		}
		matched, err := filepath.Match(suffix, path)
		return err == nil && matched
	}

	if pattern == "**" {
		return true
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(filepath.FromSlash(path)))
	return err == nil && matched
}

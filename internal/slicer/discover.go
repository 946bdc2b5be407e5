package slicer

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands recursive glob patterns ("**" matches any number of
// directories) and returns the matched regular files sorted by path.
// A file matched by several patterns is listed once.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			m = filepath.Clean(m)
			if _, ok := seen[m]; ok {
				continue
			}

			info, err := os.Stat(m)
			if err != nil {
				return nil, fmt.Errorf("cannot access %s: %w", m, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}

			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	slices.Sort(files)
	return files, nil
}

// OutputStem mirrors file under root, relative to base, without the
// extension. "data/jazz/take.wav" with base "." and root "output" becomes
// "output/data/jazz/take".
func OutputStem(root, base, file string) (string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("cannot resolve base directory %s: %w", base, err)
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", file, err)
	}

	rel, err := filepath.Rel(absBase, absFile)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s (base %s)", ErrOutsideBase, file, base)
	}

	return filepath.Join(root, strings.TrimSuffix(rel, filepath.Ext(rel))), nil
}

// WindowName returns the file name of window index out of count windows.
// The index is zero-padded to three digits, or wider when count needs it,
// so names always sort in window order.
func WindowName(stem string, index, count int) string {
	width := 3
	if n := len(strconv.Itoa(count - 1)); count > 0 && n > width {
		width = n
	}
	return fmt.Sprintf("%s_%0*d.wav", stem, width, index)
}

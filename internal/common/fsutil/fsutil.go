// Package fsutil holds the small filesystem helpers shared by the cache
// directory handling and the disk usage readout.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome resolves a leading "~" or "~/" against the user's home directory.
// Other paths, including "~name", are returned unchanged.
func ExpandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve ~: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// PathExists reports whether path exists. Errors other than "not exist"
// (permissions) count as existing.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// EnsureDir expands path and creates it with its parents.
func EnsureDir(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty directory path")
	}
	p, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir %s: %w", p, err)
	}
	return p, nil
}

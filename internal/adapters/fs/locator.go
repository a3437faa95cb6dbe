// Package fs provides file system adapters for probing Maven installations
// and fingerprinting command lines.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*Locator)(nil)

// Locator implements the FileSystem port on the local disk.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// FindByPrefix returns the regular files directly inside dir whose name starts with prefix, sorted.
// A missing directory yields no matches.
func (l *Locator) FindByPrefix(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	var matches []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		matches = append(matches, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(matches)

	return matches, nil
}

// ListJars returns the .jar files directly inside dir, sorted.
func (l *Locator) ListJars(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.jar")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", pattern)
	}

	jars := matches[:0]
	for _, match := range matches {
		if l.IsFile(match) {
			jars = append(jars, match)
		}
	}
	sort.Strings(jars)

	return jars, nil
}

// IsFile reports whether path exists and is a regular file.
func (l *Locator) IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates dir and its parents.
func (l *Locator) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}

// Package abspath resolves paths to their absolute, symlink-free form, except
// that locations reachable through a root-level symlink are spelled with the
// symlink's name rather than the name of the directory it points to.
package abspath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// entry maps the canonical target of one root-level symlink to the symlink's
// own absolute path.
type entry struct {
	target    string
	preferred string
}

// Resolver rewrites canonical paths using a table of root-level symlinks
// captured at construction time. The table is immutable, so a Resolver is
// safe for concurrent use.
type Resolver struct {
	entries []entry
}

// New scans the immediate entries of the filesystem root and returns a
// Resolver preferring the symlinks found there. Entries that are not symlinks
// or cannot be read are skipped; only failure to list the root itself is an
// error.
func New() (*Resolver, error) {
	return newResolver("/")
}

func newResolver(root string) (*Resolver, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	entries := make([]entry, 0, len(dirents))
	for _, de := range dirents {
		preferred := filepath.Join(root, de.Name())
		target, err := os.Readlink(preferred)
		if err != nil {
			// Not a symlink, or unreadable. Either way it contributes
			// no preference.
			continue
		}
		if !strings.HasPrefix(target, "/") {
			// A relative target on a root-level symlink is anchored at
			// the root, not at the process working directory.
			target = filepath.Join(root, target)
		}
		canonical, err := Canonical(target)
		if err != nil {
			continue
		}
		entries = append(entries, entry{target: canonical, preferred: preferred})
	}
	// Longest targets first, so the most specific symlink wins when several
	// point into the same subtree. For /cygdrive/c/projects/foo we want to
	// try /cygdrive/c/projects before /cygdrive/c.
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].target) > len(entries[j].target)
	})
	return &Resolver{entries: entries}, nil
}

// Resolve returns the absolute, symlink-free form of path, with the longest
// matching canonical symlink target replaced by the symlink's own name. When
// no table entry matches, the canonical path is returned unchanged.
func (r *Resolver) Resolve(path string) (string, error) {
	canonical, err := Canonical(path)
	if err != nil {
		return "", err
	}
	for _, e := range r.entries {
		if canonical == e.target {
			return e.preferred, nil
		}
		if strings.HasPrefix(canonical, e.target+"/") {
			return e.preferred + canonical[len(e.target):], nil
		}
	}
	return canonical, nil
}

// Canonical returns the absolute form of path with every symlink, "." and
// ".." resolved. Paths that do not fully exist are resolved as far as the
// filesystem allows, with the nonexistent remainder joined back on lexically.
// Failures other than nonexistence are returned to the caller.
func Canonical(path string) (string, error) {
	abs, err := filepathAbs(path)
	if err != nil {
		return "", err
	}
	current := abs
	remainder := ""
	for {
		resolved, err := filepathEvalSymlinks(current)
		if err == nil {
			if remainder == "" {
				return resolved, nil
			}
			return filepath.Join(resolved, remainder), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		next := filepath.Dir(current)
		if next == current {
			return filepath.Join(current, remainder), nil
		}
		remainder = filepath.Join(filepath.Base(current), remainder)
		current = next
	}
}

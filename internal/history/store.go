// Package history maintains the on-disk record of visited directories.
//
// The store file holds one absolute directory per line, oldest first, with no
// duplicates. Rewrites go through an advisory lock on a sidecar file plus an
// atomic rename, since every interactive shell updates the history from its
// prompt hook.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/MichaelCook/cd-history/internal/messages"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Store is an in-memory copy of the history file.
type Store struct {
	path    string
	entries []string
}

// Load reads the history file at path. A missing file yields an empty store.
func Load(sys System, path string) (*Store, error) {
	data, err := sys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Store{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.HistoryReadFailedFmt, path, err)
	}
	store := &Store{path: path}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		store.entries = append(store.entries, line)
	}
	return store, nil
}

// Add records dir as the most recent entry, removing any earlier occurrence.
// Once the store holds more than maxEntries entries the oldest are dropped.
func (s *Store) Add(dir string, maxEntries int) {
	s.remove(dir)
	s.entries = append(s.entries, dir)
	if maxEntries > 0 && len(s.entries) > maxEntries {
		s.entries = s.entries[len(s.entries)-maxEntries:]
	}
}

// Remove drops dir from the store and reports whether it was present.
func (s *Store) Remove(dir string) bool {
	return s.remove(dir)
}

func (s *Store) remove(dir string) bool {
	for i, entry := range s.entries {
		if entry == dir {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns the recorded directories, most recent first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	for i, entry := range s.entries {
		out[len(out)-1-i] = entry
	}
	return out
}

// Len returns the number of recorded directories.
func (s *Store) Len() int {
	return len(s.entries)
}

// Prune drops entries whose directory no longer exists and returns the
// dropped entries in store order. Stat failures other than nonexistence keep
// the entry: an unreadable directory is not a dead one.
func (s *Store) Prune(sys System) []string {
	kept := s.entries[:0]
	var dropped []string
	for _, entry := range s.entries {
		if _, err := sys.Stat(entry); errors.Is(err, fs.ErrNotExist) {
			dropped = append(dropped, entry)
			continue
		}
		kept = append(kept, entry)
	}
	s.entries = kept
	return dropped
}

// Save writes the store back to its file under the history lock.
func (s *Store) Save(sys System) error {
	if err := sys.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf(messages.CreateDirFailedFmt, filepath.Dir(s.path), err)
	}
	var sb strings.Builder
	for _, entry := range s.entries {
		sb.WriteString(entry)
		sb.WriteByte('\n')
	}
	return withFileLock(s.path+".lock", func() error {
		if err := sys.WriteFileAtomic(s.path, []byte(sb.String()), filePerm); err != nil {
			return fmt.Errorf(messages.HistoryWriteFailedFmt, s.path, err)
		}
		return nil
	})
}

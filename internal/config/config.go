// Package config loads and validates the cd-history configuration file.
package config

import (
	"fmt"
	"path"

	"github.com/MichaelCook/cd-history/internal/messages"
	"github.com/MichaelCook/cd-history/internal/terminal"
)

// Config is the full on-disk configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Output  OutputConfig  `toml:"output"`
}

// HistoryConfig controls where and how visited directories are recorded.
type HistoryConfig struct {
	// File is the history file path. A leading ~ expands to the home directory.
	File string `toml:"file"`
	// MaxEntries caps the history; oldest entries are dropped past it.
	MaxEntries int `toml:"max-entries"`
	// Ignore holds glob patterns for directories that are never recorded.
	Ignore []string `toml:"ignore"`
}

// OutputConfig controls presentation.
type OutputConfig struct {
	// Color is one of auto, always, never.
	Color string `toml:"color"`
}

var validColorModes = map[string]struct{}{
	terminal.ColorAuto:   {},
	terminal.ColorAlways: {},
	terminal.ColorNever:  {},
}

// Validate ensures the config is complete and consistent.
// source identifies the config in error messages.
func (c *Config) Validate(source string) error {
	if c.History.File == "" {
		return fmt.Errorf(messages.ConfigHistoryFileRequiredFmt, source)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf(messages.ConfigMaxEntriesInvalidFmt, source)
	}
	if _, ok := validColorModes[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigColorModeInvalidFmt, source)
	}
	for _, pattern := range c.History.Ignore {
		if _, err := path.Match(pattern, "/"); err != nil {
			return fmt.Errorf(messages.ConfigIgnorePatternBadFmt, source, pattern, err)
		}
	}
	return nil
}

// Ignored reports whether dir matches any configured ignore pattern.
// Patterns are matched against the whole path and against each of its
// ancestors, so "/tmp/*" ignores /tmp/scratch and everything below it.
func (c *Config) Ignored(dir string) bool {
	for _, pattern := range c.History.Ignore {
		for probe := dir; ; probe = path.Dir(probe) {
			if ok, err := path.Match(pattern, probe); err == nil && ok {
				return true
			}
			if probe == path.Dir(probe) {
				break
			}
		}
	}
	return false
}

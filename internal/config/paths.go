package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MichaelCook/cd-history/internal/messages"
)

// UserHomeDir is a package-level variable to allow test stubbing across packages.
var UserHomeDir = os.UserHomeDir

// DefaultConfigPath returns ~/.config/cd-history/config.toml.
func DefaultConfigPath() (string, error) {
	home, err := UserHomeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigHomeDirFailedFmt, err)
	}
	return filepath.Join(home, ".config", "cd-history", "config.toml"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
// Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := UserHomeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigHomeDirFailedFmt, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// HistoryPath returns the configured history file path with ~ expanded.
func (c *Config) HistoryPath() (string, error) {
	return ExpandHome(c.History.File)
}

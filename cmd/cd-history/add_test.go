package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MichaelCook/cd-history/internal/testutil"
)

func readHistory(t *testing.T, dir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "history"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Fields(string(data))
}

func TestAddCmd_RecordsArgument(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	target := filepath.Join(dir, "visited")
	require.NoError(t, os.Mkdir(target, 0o755))

	_, _, err := runCLI(t, "--config", configPath, "add", target)
	require.NoError(t, err)

	entries := readHistory(t, dir)
	require.Len(t, entries, 1)
	resolved, evalErr := filepath.EvalSymlinks(target)
	require.NoError(t, evalErr)
	require.Equal(t, resolved, entries[0])
}

func TestAddCmd_DefaultsToWorkingDirectory(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	cwd := filepath.Join(dir, "cwd")
	require.NoError(t, os.Mkdir(cwd, 0o755))

	origGetwd := getwd
	getwd = func() (string, error) { return cwd, nil }
	t.Cleanup(func() { getwd = origGetwd })

	_, _, err := runCLI(t, "--config", configPath, "add")
	require.NoError(t, err)

	entries := readHistory(t, dir)
	require.Len(t, entries, 1)
	resolved, evalErr := filepath.EvalSymlinks(cwd)
	require.NoError(t, evalErr)
	require.Equal(t, resolved, entries[0])
}

func TestAddCmd_DeduplicatesMostRecentLast(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, os.Mkdir(first, 0o755))
	require.NoError(t, os.Mkdir(second, 0o755))

	for _, target := range []string{first, second, first} {
		_, _, err := runCLI(t, "--config", configPath, "add", target)
		require.NoError(t, err)
	}

	entries := readHistory(t, dir)
	require.Len(t, entries, 2)
	resolvedFirst, err := filepath.EvalSymlinks(first)
	require.NoError(t, err)
	require.Equal(t, resolvedFirst, entries[1], "re-added directory must move to the most recent position")
}

func TestAddCmd_RejectsNonDirectory(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	file := filepath.Join(dir, "file")
	testutil.WriteFile(t, file, "not a dir")

	_, _, err := runCLI(t, "--config", configPath, "add", file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}

func TestAddCmd_RejectsMissingDirectory(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)

	_, _, err := runCLI(t, "--config", configPath, "add", filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestAddCmd_IgnoredDirectorySkippedSilently(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	histPath := filepath.Join(dir, "history")
	configPath := filepath.Join(dir, "config.toml")
	testutil.WriteFile(t, configPath,
		"[history]\nfile = \""+histPath+"\"\nignore = [\""+resolvedDir+"/scratch\"]\n")
	scratch := filepath.Join(dir, "scratch")
	require.NoError(t, os.Mkdir(scratch, 0o755))

	stdout, stderr, err := runCLI(t, "--config", configPath, "add", scratch)
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Empty(t, stderr)
	require.Empty(t, readHistory(t, dir))
}

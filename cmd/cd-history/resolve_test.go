package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MichaelCook/cd-history/internal/testutil"
)

func TestResolveCmd_PrintsEachArgument(t *testing.T) {
	stubResolver(t, func(path string) (string, error) {
		return "/resolved" + path, nil
	})

	stdout, _, err := runCLI(t, "resolve", "/a", "/b")
	require.NoError(t, err)
	require.Equal(t, "/resolved/a\n/resolved/b\n", stdout)
}

func TestResolveCmd_DefaultsToCurrentDirectory(t *testing.T) {
	var got string
	stubResolver(t, func(path string) (string, error) {
		got = path
		return "/resolved", nil
	})

	stdout, _, err := runCLI(t, "resolve")
	require.NoError(t, err)
	require.Equal(t, ".", got)
	require.Equal(t, "/resolved\n", stdout)
}

func TestResolveCmd_ResolverErrorPropagates(t *testing.T) {
	want := errors.New("cannot canonicalize")
	stubResolver(t, func(path string) (string, error) {
		return "", want
	})

	_, _, err := runCLI(t, "resolve", "/a")
	require.ErrorIs(t, err, want)
}

func TestResolveCmd_ConstructionErrorPropagates(t *testing.T) {
	want := errors.New("root unreadable")
	orig := newPathResolver
	newPathResolver = func() (pathResolver, error) { return nil, want }
	t.Cleanup(func() { newPathResolver = orig })

	_, _, err := runCLI(t, "resolve", "/a")
	require.ErrorIs(t, err, want)
}

func TestResolveCmd_CanonicalizesRelativePaths(t *testing.T) {
	canonicalResolver(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	testutil.WithWorkingDir(t, dir, func() {
		stdout, _, err := runCLI(t, "resolve", "sub")
		require.NoError(t, err)
		resolved, evalErr := filepath.EvalSymlinks(sub)
		require.NoError(t, evalErr)
		require.Equal(t, resolved+"\n", stdout)
	})
}

package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMain_ErrorExitsNonZero(t *testing.T) {
	origExecute := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}
	t.Cleanup(func() { executeFunc = origExecute })

	var errBuf bytes.Buffer
	code := -1
	runMain([]string{"cd-history"}, io.Discard, &errBuf, func(c int) { code = c })

	require.Equal(t, 1, code)
	require.Contains(t, errBuf.String(), "boom")
	require.True(t, strings.Contains(errBuf.String(), ": boom"), "error should carry the program-name prefix: %q", errBuf.String())
}

func TestRunMain_SuccessDoesNotExit(t *testing.T) {
	origExecute := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return nil
	}
	t.Cleanup(func() { executeFunc = origExecute })

	exited := false
	runMain([]string{"cd-history"}, io.Discard, io.Discard, func(int) { exited = true })
	require.False(t, exited)
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"bare", "1.2.3", "unknown", "unknown", "1.2.3"},
		{"with commit", "1.2.3", "abc123", "unknown", "1.2.3 (commit abc123)"},
		{"with commit and date", "1.2.3", "abc123", "2026-01-02", "1.2.3 (commit abc123, built 2026-01-02)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, BuildDate = tt.version, tt.commit, tt.date
			require.Equal(t, tt.want, versionString())
		})
	}
}

func TestExecute_Version(t *testing.T) {
	origVersion := Version
	Version = "9.9.9"
	t.Cleanup(func() { Version = origVersion })

	stdout, _, err := runCLI(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "9.9.9\n", stdout)
}

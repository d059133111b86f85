// Package report writes program-prefixed diagnostics to stderr for CLI callers.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stderr and exitFunc are package-level variables to allow test stubbing.
var (
	Stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// ProgName returns the base name of the running executable, used as the
// prefix for every diagnostic line.
func ProgName() string {
	return filepath.Base(os.Args[0])
}

// Warn writes "<prog>: <message>" to stderr.
func Warn(format string, args ...any) {
	_, _ = fmt.Fprintf(Stderr, "%s: %s\n", ProgName(), fmt.Sprintf(format, args...))
}

// Die writes "<prog>: <message>" to stderr and exits with status 1.
func Die(format string, args ...any) {
	Warn(format, args...)
	exitFunc(1)
}

// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Color modes accepted by the output.color config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// This is the canonical implementation for terminal detection across the codebase.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorEnabled reports whether colored output should be produced for the
// given mode. ColorAuto enables color only when stdout is a terminal.
func ColorEnabled(mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

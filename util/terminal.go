// Package util holds small helpers shared across the module.
package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of the terminal attached to
// stdout, or fallback when stdout is not a terminal or its size cannot
// be determined.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	return widthOr(w, err, fallback)
}

func widthOr(w int, err error, fallback int) int {
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

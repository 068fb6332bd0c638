package main

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatHex spaces bytes apart on a terminal and prints them packed when
// the output is piped.
func formatHex(w io.Writer, b []byte) string {
	if !isTerminal(w) {
		return hex.EncodeToString(b)
	}
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = hex.EncodeToString([]byte{c})
	}
	return strings.Join(parts, " ")
}

//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName removes path separators from a single name segment and trims
// leading dots, so the result cannot escape its directory or hide itself.
func CleanFileName(in string) string {
	drop := string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if strings.ContainsRune(drop, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

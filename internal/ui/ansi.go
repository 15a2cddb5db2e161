package ui

import (
	"io"
	"regexp"
)

const clearScreen = "\033[2J\033[H"

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// StripANSI removes escape sequences, for width math and tests.
func StripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// Clear wipes the terminal and homes the cursor.
func Clear(w io.Writer) {
	io.WriteString(w, clearScreen)
}

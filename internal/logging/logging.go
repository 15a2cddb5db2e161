// Package logging builds the diagnostic logger. It writes to stderr so
// it never mixes with the interactive screen on stdout.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a text logger prefixed "todo". Unknown levels fall back
// to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "todo",
	})
}

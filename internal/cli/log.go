// Package cli implements the c14n command-line interface.
//
// It provides commands for canonicalizing RDF datasets ingested from
// JSON-LD documents and for deciding dataset isomorphism. The CLI is built
// using cobra; --verbose (-v) enables debug-level logging via the
// charmbracelet/log library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// Log levels re-exported so main does not import charmbracelet/log directly.
const (
	LogInfo  = log.InfoLevel
	LogDebug = log.DebugLevel
)

// newLogger creates a logger with timestamp formatting. The logger writes
// to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

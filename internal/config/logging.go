package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. An unknown level falls back to info.
func NewLogger(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

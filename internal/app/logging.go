package app

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

// NewLogger returns a logger writing human-readable lines to w. Verbose
// enables debug entries.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &log.Logger{Handler: cli.New(w), Level: level}
}

// Package enginelog provides the process-wide structured logger for
// cmd/neapolitan. Library packages (matrix, network, flux, elements,
// solver, study) stay silent; only the command-line layer logs.
package enginelog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the shared logger, writing human-readable console output to
// stderr with caller information attached.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().
	Timestamp().
	Caller().
	Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// SetLevel adjusts the minimum level Log emits; cmd/neapolitan wires
// this to a --verbose flag.
func SetLevel(level zerolog.Level) {
	Log = Log.Level(level)
}

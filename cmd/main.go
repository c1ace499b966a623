// Package cmd implements the CLI application to convert expense logs.
package cmd

import (
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "expenses")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Diagnostics returns the logger for the side channel: per-row parse
// failures and run summaries go to stderr, never into the output artifact.
func Diagnostics() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger()
}

// getenv returns the environment value for key, or fallback when unset.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

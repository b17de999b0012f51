package cli

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer // Console log sink and --print-config output
	Stderr io.Writer // Warnings and fatal errors
	DotEnv string    // .env file loaded before reading CERTGEN_*; empty skips it
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		DotEnv: ".env",
	}
}

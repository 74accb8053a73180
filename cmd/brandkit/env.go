package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-brandkit"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// Fetcher and Exporter replace the network and browser in tests.
	// Nil means the production implementation built from config.
	Fetcher  brandkit.Fetcher
	Exporter brandkit.Exporter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, logging and the desktop integrations.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger

	// Clipboard replaces the system clipboard content.
	Clipboard func(text string) error

	// OpenURL shows a page in a browser.
	OpenURL func(url string) error
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    newLogger(os.Stderr, false, false, ""),
		Clipboard: writeClipboard,
		OpenURL:   openInBrowser,
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/go-rod/rod/lib/launcher"
)

// Sentinel errors for desktop integration.
var (
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrBrowserNotFound      = errors.New("no browser found")
)

// writeClipboard replaces the system clipboard content with text.
func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

// openInBrowser opens url in ROD_BROWSER_BIN, or in the Chrome-family
// browser the rod launcher finds on this system. It does not wait for the
// browser to exit.
func openInBrowser(url string) error {
	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin == "" {
		found, has := launcher.LookPath()
		if !has {
			return ErrBrowserNotFound
		}
		bin = found
	}

	cmd := exec.Command(bin, url) // #nosec G204 -- browser binary from env or launcher lookup
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	return cmd.Process.Release()
}

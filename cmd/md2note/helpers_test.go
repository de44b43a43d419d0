package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment with recorded desktop calls
// ---------------------------------------------------------------------------

// fakeDesktop records clipboard writes and opened URLs.
type fakeDesktop struct {
	mu      sync.Mutex
	copied  []string
	opened  []string
	clipErr error
	openErr error
}

func (d *fakeDesktop) clipboard(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.clipErr != nil {
		return d.clipErr
	}
	d.copied = append(d.copied, text)
	return nil
}

func (d *fakeDesktop) openURL(url string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = append(d.opened, url)
	return nil
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	env     *Environment
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	desktop *fakeDesktop
}

// newTestEnv returns an Environment writing to buffers, with stdin set to
// input and a JSON logger on stderr.
func newTestEnv(input string) *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	desktop := &fakeDesktop{}

	return &testEnv{
		env: &Environment{
			Now:       func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdin:     strings.NewReader(input),
			Stdout:    stdout,
			Stderr:    stderr,
			Logger:    zerolog.New(stderr),
			Clipboard: desktop.clipboard,
			OpenURL:   desktop.openURL,
		},
		stdout:  stdout,
		stderr:  stderr,
		desktop: desktop,
	}
}

// writeFiles creates files under dir; keys are slash-separated relative paths.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// mustParseConvertFlags parses args or fails the test.
func mustParseConvertFlags(t *testing.T, args ...string) (*convertFlags, []string) {
	t.Helper()
	flags, positional, err := parseConvertFlags(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConvertFlags(%q): %v", args, err)
	}
	return flags, positional
}

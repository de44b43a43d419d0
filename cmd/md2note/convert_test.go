package main

// Notes:
// - runConvert: we drive the real converter end to end on temp files, with
//   the clipboard and browser replaced by recorders.
// - The real clipboard and browser are not exercised here.

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2note "github.com/alnah/go-md2note"
	"github.com/alnah/go-md2note/internal/config"
)

// runConvertTest parses args and runs the conversion with an empty
// environment configuration.
func runConvertTest(t *testing.T, te *testEnv, args ...string) error {
	t.Helper()
	flags, positional := mustParseConvertFlags(t, args...)
	return runConvert(context.Background(), positional, flags, &envConfig{}, te.env)
}

// ---------------------------------------------------------------------------
// TestRunConvert_Output - Where results are written
// ---------------------------------------------------------------------------

func TestRunConvert_Output(t *testing.T) {
	t.Parallel()

	t.Run("next to source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"post.md": "# Title\n\n==hot=="})
		te := newTestEnv("")

		if err := runConvertTest(t, te, filepath.Join(dir, "post.md")); err != nil {
			t.Fatalf("runConvert: %v", err)
		}

		got := readFile(t, filepath.Join(dir, "post.note.md"))
		if !strings.Contains(got, "# Title") || !strings.Contains(got, "**hot**") {
			t.Errorf("converted note = %q", got)
		}
		if !strings.Contains(te.stdout.String(), "Created") {
			t.Errorf("stdout = %q, want Created line", te.stdout.String())
		}
	})

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"post.md": "==hot=="})
		te := newTestEnv("")

		if err := runConvertTest(t, te, filepath.Join(dir, "post.md"), "-o", "-"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}

		if te.stdout.String() != "**hot**" {
			t.Errorf("stdout = %q, want %q", te.stdout.String(), "**hot**")
		}
		if _, err := os.Stat(filepath.Join(dir, "post.note.md")); !os.IsNotExist(err) {
			t.Error("no file should be written for --output -")
		}
	})

	t.Run("stdin to stdout", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv("==hot==")
		if err := runConvertTest(t, te, "-"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if te.stdout.String() != "**hot**" {
			t.Errorf("stdout = %q, want %q", te.stdout.String(), "**hot**")
		}
	})

	t.Run("stdin to directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		te := newTestEnv("==hot==")
		if err := runConvertTest(t, te, "-", "-o", dir); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if got := readFile(t, filepath.Join(dir, "stdin.note.md")); got != "**hot**" {
			t.Errorf("file = %q, want %q", got, "**hot**")
		}
	})

	t.Run("directory mirrored", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := filepath.Join(t.TempDir(), "out")
		writeFiles(t, dir, map[string]string{"a.md": "a", "sub/b.md": "b"})
		te := newTestEnv("")

		if err := runConvertTest(t, te, dir, "-o", out, "-w", "2"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		for _, p := range []string{"a.note.md", filepath.Join("sub", "b.note.md")} {
			if _, err := os.Stat(filepath.Join(out, p)); err != nil {
				t.Errorf("missing %s: %v", p, err)
			}
		}
		if !strings.Contains(te.stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout = %q, want summary", te.stdout.String())
		}
	})

	t.Run("sanitize written file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"post.md": "(aside)"})
		te := newTestEnv("")

		if err := runConvertTest(t, te, filepath.Join(dir, "post.md"), "--sanitize"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if got := readFile(t, filepath.Join(dir, "post.note.md")); got != "（aside）" {
			t.Errorf("file = %q, want full-width parentheses", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_Settings - Conversion settings sources
// ---------------------------------------------------------------------------

func TestRunConvert_Settings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"data.json":   `{"highlightConversion": "italic", "unknownKey": 1}`,
		"config.yaml": "conversion:\n  highlightConversion: plain\n",
	})

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"defaults", nil, "**hot**"},
		{"flag", []string{"--highlight", "mark"}, "<mark>hot</mark>"},
		{"settings file", []string{"--settings", filepath.Join(dir, "data.json")}, "*hot*"},
		{"config conversion block", []string{"--config", filepath.Join(dir, "config.yaml")}, "hot"},
		{
			"flag over settings file",
			[]string{"--settings", filepath.Join(dir, "data.json"), "--highlight", "bold"},
			"**hot**",
		},
		{"unknown value falls back", []string{"--highlight", "glow"}, "hot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv("==hot==")
			args := append([]string{"-"}, tt.args...)
			if err := runConvertTest(t, te, args...); err != nil {
				t.Fatalf("runConvert: %v", err)
			}
			if te.stdout.String() != tt.expected {
				t.Errorf("stdout = %q, want %q", te.stdout.String(), tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Errors - Failure modes and their sentinels
// ---------------------------------------------------------------------------

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":     "a",
		"b.md":     "b",
		"bad.yaml": "unknownSection: true\n",
		"empty/x":  "",
	})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no input", nil, ErrNoInput},
		{"missing file", []string{filepath.Join(dir, "missing.md")}, ErrNoInput},
		{"no markdown in directory", []string{filepath.Join(dir, "empty")}, ErrNoInput},
		{"stdout with many files", []string{dir, "-o", "-"}, ErrStdoutMultiple},
		{"strict rejects unknown value", []string{"-", "--strict", "--links", "wiki"}, md2note.ErrInvalidSetting},
		{"invalid workers", []string{"-", "-w", "-1"}, ErrInvalidWorkerCount},
		{"config not found", []string{"-", "--config", "nowhere-md2note-test"}, config.ErrConfigNotFound},
		{"config parse error", []string{"-", "--config", filepath.Join(dir, "bad.yaml")}, config.ErrConfigParse},
		{"settings file missing", []string{"-", "--settings", filepath.Join(dir, "none.json")}, os.ErrNotExist},
		{"unknown preview style", []string{"-", "--preview", "--style", "neon"}, md2note.ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv("text")
			err := runConvertTest(t, te, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runConvert(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Export - Clipboard, editor and preview
// ---------------------------------------------------------------------------

func TestRunConvert_Export(t *testing.T) {
	t.Parallel()

	t.Run("copy is sanitized", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv("(aside) ==hot==")
		if err := runConvertTest(t, te, "-", "--copy"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if len(te.desktop.copied) != 1 || te.desktop.copied[0] != "（aside） **hot**" {
			t.Errorf("copied = %q", te.desktop.copied)
		}
		if te.stdout.String() != "(aside) **hot**" {
			t.Errorf("stdout should stay unsanitized, got %q", te.stdout.String())
		}
		if !strings.Contains(te.stderr.String(), `"chars":15`) {
			t.Errorf("copy notice should report the sanitized length, got %q", te.stderr.String())
		}
		if len(te.desktop.opened) != 0 {
			t.Errorf("nothing should be opened, got %q", te.desktop.opened)
		}
	})

	t.Run("copy unsanitized on request", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv("(aside)")
		if err := runConvertTest(t, te, "-", "--copy", "--sanitize=false"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if len(te.desktop.copied) != 1 || te.desktop.copied[0] != "(aside)" {
			t.Errorf("copied = %q", te.desktop.copied)
		}
	})

	t.Run("open copies and opens editor", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv("text")
		if err := runConvertTest(t, te, "-", "--open"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if len(te.desktop.copied) != 1 {
			t.Errorf("copied %d times, want 1", len(te.desktop.copied))
		}
		if len(te.desktop.opened) != 1 || te.desktop.opened[0] != config.DefaultEditorURL {
			t.Errorf("opened = %q, want %q", te.desktop.opened, config.DefaultEditorURL)
		}
	})

	t.Run("clipboard failure is a notice", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv("text")
		te.desktop.clipErr = ErrClipboardUnavailable
		if err := runConvertTest(t, te, "-", "--copy"); err != nil {
			t.Fatalf("clipboard failure should not fail the conversion: %v", err)
		}
		if !strings.Contains(te.stderr.String(), "could not copy to clipboard") {
			t.Errorf("stderr = %q, want notice", te.stderr.String())
		}
		if te.stdout.String() != "text" {
			t.Errorf("stdout = %q, want converted text", te.stdout.String())
		}
	})

	t.Run("browser failure is a notice", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv("text")
		te.desktop.openErr = ErrBrowserNotFound
		if err := runConvertTest(t, te, "-", "--open"); err != nil {
			t.Fatalf("browser failure should not fail the conversion: %v", err)
		}
		if !strings.Contains(te.stderr.String(), "could not open the note.com editor") {
			t.Errorf("stderr = %q, want notice", te.stderr.String())
		}
	})

	t.Run("batch skips export", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"a.md": "a", "b.md": "b"})
		te := newTestEnv("")

		if err := runConvertTest(t, te, dir, "--copy"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if len(te.desktop.copied) != 0 {
			t.Errorf("batch should not copy, got %q", te.desktop.copied)
		}
		if !strings.Contains(te.stderr.String(), "need a single note") {
			t.Errorf("stderr = %q, want skip warning", te.stderr.String())
		}
	})

	t.Run("preview", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"post.md": "---\ntitle: Trip\n---\n# Day 1\n\n==hot=="})
		te := newTestEnv("")

		if err := runConvertTest(t, te, filepath.Join(dir, "post.md"), "--preview", "--style", "plain"); err != nil {
			t.Fatalf("runConvert: %v", err)
		}
		if len(te.desktop.opened) != 1 {
			t.Fatalf("opened = %q, want one preview", te.desktop.opened)
		}

		u, err := url.Parse(te.desktop.opened[0])
		if err != nil || u.Scheme != "file" {
			t.Fatalf("opened %q, want a file URL", te.desktop.opened[0])
		}
		path := filepath.FromSlash(u.Path)
		t.Cleanup(func() {
			_ = os.Remove(path)
		})

		page := readFile(t, path)
		if !strings.Contains(page, "<title>Trip</title>") {
			t.Error("preview title should come from the source frontmatter")
		}
		if !strings.Contains(page, "Minimal preview") {
			t.Error("preview should use the plain style")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags / TestResolveSettings / TestResolveInputPath
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	flags, _ := mustParseConvertFlags(t,
		"--sanitize", "--copy", "--open", "--preview",
		"--style", "plain", "--asset-path", "/assets", "--attachments", "img,files")

	cfg := config.DefaultConfig()
	mergeFlags(flags, cfg)

	if !cfg.Export.Sanitize || !cfg.Export.Copy || !cfg.Export.OpenEditor || !cfg.Preview.Enabled {
		t.Errorf("export flags not merged: %+v %+v", cfg.Export, cfg.Preview)
	}
	if cfg.Preview.Style != "plain" {
		t.Errorf("style = %q, want %q", cfg.Preview.Style, "plain")
	}
	if cfg.Assets.BasePath != "/assets" {
		t.Errorf("asset path = %q, want %q", cfg.Assets.BasePath, "/assets")
	}
	if strings.Join(cfg.Preview.AttachmentDirs, ",") != "img,files" {
		t.Errorf("attachments = %q", cfg.Preview.AttachmentDirs)
	}
}

func TestMergeFlags_KeepsConfigWhenUnset(t *testing.T) {
	t.Parallel()

	flags, _ := mustParseConvertFlags(t)
	cfg := config.DefaultConfig()
	cfg.Export.Sanitize = true
	cfg.Preview.Style = "plain"

	mergeFlags(flags, cfg)

	if !cfg.Export.Sanitize {
		t.Error("unset --sanitize should keep config value")
	}
	if cfg.Preview.Style != "plain" {
		t.Errorf("style = %q, want config value", cfg.Preview.Style)
	}
}

func TestBuildExportPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		sanitizeCopy bool
		copy         bool
		active       bool
	}{
		{"nothing", nil, true, false, false},
		{"copy", []string{"--copy"}, true, true, true},
		{"open implies copy", []string{"--open"}, true, true, true},
		{"explicit no sanitize", []string{"--copy", "--sanitize=false"}, false, true, true},
		{"preview only", []string{"--preview"}, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, _ := mustParseConvertFlags(t, tt.args...)
			cfg := config.DefaultConfig()
			mergeFlags(flags, cfg)
			plan := buildExportPlan(flags, cfg)

			if plan.sanitizeCopy != tt.sanitizeCopy {
				t.Errorf("sanitizeCopy = %v, want %v", plan.sanitizeCopy, tt.sanitizeCopy)
			}
			if plan.copy != tt.copy {
				t.Errorf("copy = %v, want %v", plan.copy, tt.copy)
			}
			if plan.active() != tt.active {
				t.Errorf("active() = %v, want %v", plan.active(), tt.active)
			}
		})
	}
}

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"flag.yaml": "h1Conversion: plain\n",
		"env.yaml":  "h1Conversion: bold\nmermaidConversion: '[図]'\n",
	})

	cfg := config.DefaultConfig()
	cfg.Conversion = map[string]any{"h1Conversion": "h2"}

	tests := []struct {
		name        string
		flagPath    string
		envPath     string
		args        []string
		expectedH1  md2note.HeadingConversion
		expectedMer string
	}{
		{"config block", "", "", nil, md2note.HeadingH2, md2note.DefaultMermaidReplacementText},
		{"env settings file", "", filepath.Join(dir, "env.yaml"), nil, md2note.HeadingBold, "[図]"},
		{"flag settings file", filepath.Join(dir, "flag.yaml"), filepath.Join(dir, "env.yaml"), nil, md2note.HeadingPlain, md2note.DefaultMermaidReplacementText},
		{"flag override", "", "", []string{"--h1", "h1", "--mermaid-text", "x"}, md2note.HeadingH1, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, _ := mustParseConvertFlags(t, tt.args...)
			s, err := resolveSettings(tt.flagPath, &flags.conversion, &envConfig{SettingsPath: tt.envPath}, cfg)
			if err != nil {
				t.Fatalf("resolveSettings: %v", err)
			}
			if s.H1Conversion != tt.expectedH1 {
				t.Errorf("H1Conversion = %q, want %q", s.H1Conversion, tt.expectedH1)
			}
			if s.MermaidReplacementText != tt.expectedMer {
				t.Errorf("MermaidReplacementText = %q, want %q", s.MermaidReplacementText, tt.expectedMer)
			}
		})
	}
}

func TestApplyConversionFlags(t *testing.T) {
	t.Parallel()

	flags, _ := mustParseConvertFlags(t,
		"--h3", "h2", "--h6", "plain",
		"--highlight", "mark", "--inline-code", "bold", "--links", "remove",
		"--mermaid", "code", "--checkbox-unchecked", "[ ]", "--checkbox-checked", "[x]")

	s := md2note.DefaultSettings()
	applyConversionFlags(&flags.conversion, &s)

	want := md2note.DefaultSettings()
	want.H3Conversion = md2note.HeadingH2
	want.H6Conversion = md2note.HeadingPlain
	want.HighlightConversion = md2note.HighlightMark
	want.InlineCodeConversion = md2note.InlineCodeBold
	want.InternalLinkConversion = md2note.LinkRemove
	want.MermaidConversionType = md2note.MermaidCode
	want.CheckboxUnchecked = "[ ]"
	want.CheckboxChecked = "[x]"

	if s != want {
		t.Errorf("applyConversionFlags:\n got %+v\nwant %+v", s, want)
	}
}

func TestApplyConversionFlags_EmptyMarkers(t *testing.T) {
	t.Parallel()

	flags, _ := mustParseConvertFlags(t, "--checkbox-unchecked=", "--mermaid-text=")

	s := md2note.DefaultSettings()
	applyConversionFlags(&flags.conversion, &s)

	if s.CheckboxUnchecked != "" {
		t.Errorf("CheckboxUnchecked = %q, want empty", s.CheckboxUnchecked)
	}
	if s.MermaidReplacementText != "" {
		t.Errorf("MermaidReplacementText = %q, want empty", s.MermaidReplacementText)
	}
	if s.CheckboxChecked != md2note.DefaultCheckboxChecked {
		t.Errorf("CheckboxChecked = %q, want default %q", s.CheckboxChecked, md2note.DefaultCheckboxChecked)
	}
}

func TestResolveInputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		defaultDir string
		expected   string
		wantErr    error
	}{
		{"positional", []string{"a.md"}, "vault", "a.md", nil},
		{"config default", nil, "vault", "vault", nil},
		{"none", nil, "", "", ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Input.DefaultDir = tt.defaultDir

			got, err := resolveInputPath(tt.args, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("resolveInputPath = %q, want %q", got, tt.expected)
			}
		})
	}
}

package main

import (
	"bytes"
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseConvertFlags([]string{
		"vault", "-o", "out", "-w", "3", "-c", "work", "--settings", "data.json",
		"-q", "-v", "--h1", "h2", "--h4", "plain", "--highlight", "mark",
		"--inline-code", "bold", "--links", "plain", "--mermaid", "code",
		"--mermaid-text", "diagram", "--checkbox-unchecked", "o", "--checkbox-checked", "x",
		"--strict", "--copy", "--open", "--preview", "--style", "plain",
		"--asset-path", "assets", "--attachments", "img", "--attachments", "files",
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConvertFlags: %v", err)
	}

	if len(positional) != 1 || positional[0] != "vault" {
		t.Errorf("positional = %q, want [vault]", positional)
	}
	if flags.output != "out" || flags.workers != 3 {
		t.Errorf("output/workers = %q/%d", flags.output, flags.workers)
	}

	common := commonFlags{config: "work", settings: "data.json", quiet: true, verbose: true}
	if flags.common != common {
		t.Errorf("common = %+v, want %+v", flags.common, common)
	}

	conv := flags.conversion
	if conv.headings[0] != "h2" || conv.headings[3] != "plain" || conv.headings[1] != "" {
		t.Errorf("headings = %q", conv.headings)
	}
	if conv.highlight != "mark" || conv.inlineCode != "bold" || conv.links != "plain" {
		t.Errorf("inline flags = %+v", conv)
	}
	if conv.mermaid != "code" || conv.mermaidText != "diagram" {
		t.Errorf("mermaid flags = %q, %q", conv.mermaid, conv.mermaidText)
	}
	if conv.checkboxUnchecked != "o" || conv.checkboxChecked != "x" || !conv.strict {
		t.Errorf("checkbox/strict flags = %+v", conv)
	}

	exp := flags.export
	if !exp.copy || !exp.open || !exp.preview || exp.style != "plain" || exp.assetPath != "assets" {
		t.Errorf("export = %+v", exp)
	}
	if len(exp.attachments) != 2 || exp.attachments[1] != "files" {
		t.Errorf("attachments = %q", exp.attachments)
	}
	if flags.sanitizeSet {
		t.Error("sanitizeSet should be false without --sanitize")
	}
}

func TestParseConvertFlags_SanitizeSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		sanitize    bool
		sanitizeSet bool
	}{
		{"absent", nil, false, false},
		{"on", []string{"--sanitize"}, true, true},
		{"explicit off", []string{"--sanitize=false"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, _ := mustParseConvertFlags(t, tt.args...)
			if flags.export.sanitize != tt.sanitize || flags.sanitizeSet != tt.sanitizeSet {
				t.Errorf("sanitize = %v/%v, want %v/%v",
					flags.export.sanitize, flags.sanitizeSet, tt.sanitize, tt.sanitizeSet)
			}
		})
	}
}

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantHelp bool
	}{
		{"help", []string{"-h"}, true},
		{"unknown flag", []string{"--nope"}, false},
		{"bad int", []string{"-w", "many"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseConvertFlags(tt.args, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, flag.ErrHelp) != tt.wantHelp {
				t.Errorf("error = %v, help = %v", err, tt.wantHelp)
			}
		})
	}
}

func TestParseSettingsFlags(t *testing.T) {
	t.Parallel()

	flags, _, err := parseSettingsFlags([]string{"--settings", "data.json", "--h2", "bold"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseSettingsFlags: %v", err)
	}
	if flags.common.settings != "data.json" || flags.conversion.headings[1] != "bold" {
		t.Errorf("flags = %+v", flags)
	}

	if _, _, err := parseSettingsFlags([]string{"--copy"}, &bytes.Buffer{}); err == nil {
		t.Error("export flags should be rejected by settings")
	}
}

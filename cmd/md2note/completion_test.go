package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not run them in the target shell.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_md2note_completions",
				"complete -F _md2note_completions md2note",
				"compgen",
				"convert settings completion version help",
				"--output|-o)",
				"--highlight)",
				`"mark bold italic plain"`,
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef md2note",
				"_md2note",
				"_arguments",
				"_describe",
				"'(-o --output)'{-o,--output}",
				"--links[",
				"(markdown plain remove)",
				`symbol for - \[ \]`,
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c md2note",
				"__fish_md2note_needs_command",
				"__fish_md2note_using_command",
				"-s o -l output",
				"-l mermaid -x -a 'text code'",
				"-l settings -r -F",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q): %v", tt.shell, err)
			}

			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, "powershell")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
}

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	if got := strings.Join(commandNames(cmds), " "); got != "convert settings completion version help" {
		t.Errorf("commands = %q", got)
	}

	var convert commandDef
	for _, c := range cmds {
		if c.Name == "convert" {
			convert = c
		}
	}

	types := map[string]flagType{}
	for _, f := range convert.Flags {
		types[f.Long] = f.Type
	}

	expected := map[string]flagType{
		"output":       flagDir,
		"workers":      flagInt,
		"h1":           flagEnum,
		"highlight":    flagEnum,
		"config":       flagFile,
		"strict":       flagBool,
		"copy":         flagBool,
		"mermaid-text": flagString,
	}
	for name, want := range expected {
		got, ok := types[name]
		if !ok {
			t.Errorf("convert flag --%s missing", name)
			continue
		}
		if got != want {
			t.Errorf("--%s type = %d, want %d", name, got, want)
		}
	}
}

func TestRunCompletion_NoArgs(t *testing.T) {
	t.Parallel()

	te := newTestEnv("")
	if err := runCompletion(nil, te.env); err != nil {
		t.Fatalf("runCompletion: %v", err)
	}
	if !strings.Contains(te.stdout.String(), "Usage: md2note completion <shell>") {
		t.Errorf("stdout = %q, want usage", te.stdout.String())
	}
}

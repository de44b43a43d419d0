package main

import (
	"fmt"
	"io"

	md2note "github.com/alnah/go-md2note"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2note <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert Obsidian notes to note.com Markdown")
	fmt.Fprintln(w, "  settings    Print the effective conversion settings")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'md2note note.md' is short for 'md2note convert note.md'.")
	fmt.Fprintln(w, "Run 'md2note help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2note convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Obsidian notes to Markdown the note.com editor accepts.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>           Output file, directory, or - for stdout")
	fmt.Fprintln(w, "                                Default: <name>.note.md next to the source")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "      --settings <path>         Settings file (YAML, or Obsidian data.json)")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printConversionFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export (single note only):")
	fmt.Fprintln(w, "      --sanitize                Escape characters the editor mangles")
	fmt.Fprintln(w, "                                (always on for --copy unless --sanitize=false)")
	fmt.Fprintln(w, "      --copy                    Copy the result to the clipboard")
	fmt.Fprintln(w, "      --open                    Copy, then open the note.com editor")
	fmt.Fprintln(w, "      --preview                 Open an HTML preview in the browser")
	fmt.Fprintln(w, "      --style <name>            Preview style: note, plain")
	fmt.Fprintln(w, "      --asset-path <dir>        Directory with custom styles/<name>.css")
	fmt.Fprintln(w, "      --attachments <dirs>      Preview image directories, comma-separated")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2NOTE_CONFIG, MD2NOTE_SETTINGS, MD2NOTE_INPUT_DIR, MD2NOTE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2NOTE_WORKERS, MD2NOTE_EDITOR_URL, MD2NOTE_LOG_LEVEL (also read from .env)")
}

// printConversionFlags prints the conversion override flags.
func printConversionFlags(w io.Writer) {
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --h1 .. --h6 <s>          Heading level: h1, h2, bold, plain")
	fmt.Fprintln(w, "      --highlight <s>           ==highlight==: mark, bold, italic, plain")
	fmt.Fprintln(w, "      --inline-code <s>         `code`: bold, plain")
	fmt.Fprintln(w, "      --links <s>               [[links]]: markdown, plain, remove")
	fmt.Fprintln(w, "      --mermaid <s>             Mermaid diagrams: text, code")
	fmt.Fprintln(w, "      --mermaid-text <s>        Replacement text for mermaid diagrams")
	fmt.Fprintln(w, "      --checkbox-unchecked <s>  Symbol for - [ ]")
	fmt.Fprintln(w, "      --checkbox-checked <s>    Symbol for - [x]")
	fmt.Fprintln(w, "      --strict                  Reject unknown values instead of falling back")
}

// printSettingsUsage prints usage for the settings command.
func printSettingsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2note settings [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the conversion settings as YAML, after the config file, the")
	fmt.Fprintln(w, "settings file and flag overrides are applied. The output is a valid")
	fmt.Fprintln(w, "--settings file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "      --settings <path>         Settings file (YAML, or Obsidian data.json)")
	fmt.Fprintln(w)
	printConversionFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings file keys:")
	for _, key := range md2note.SettingKeys() {
		fmt.Fprintf(w, "  %s\n", key)
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "settings":
		printSettingsUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2note version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2note help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

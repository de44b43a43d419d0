package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	settings string
	quiet    bool
	verbose  bool
}

// conversionFlags override individual conversion settings.
// Empty enum flags leave the setting from the settings file or config alone.
// Marker and text flags apply whenever given, so they can be set to "".
type conversionFlags struct {
	headings          [6]string
	highlight         string
	inlineCode        string
	links             string
	mermaid           string
	mermaidText       string
	checkboxUnchecked string
	checkboxChecked   string
	strict            bool

	mermaidTextSet       bool
	checkboxUncheckedSet bool
	checkboxCheckedSet   bool
}

// markLiteralFlags records which free-text conversion flags were given.
func markLiteralFlags(fs *flag.FlagSet, f *conversionFlags) {
	f.mermaidTextSet = fs.Changed("mermaid-text")
	f.checkboxUncheckedSet = fs.Changed("checkbox-unchecked")
	f.checkboxCheckedSet = fs.Changed("checkbox-checked")
}

// exportFlags holds the steps run after a single note is converted.
type exportFlags struct {
	sanitize    bool
	copy        bool
	open        bool
	preview     bool
	style       string
	assetPath   string
	attachments []string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	conversion conversionFlags
	export     exportFlags

	// sanitizeSet records an explicit --sanitize, so --sanitize=false can
	// turn off the default sanitizing of copied text.
	sanitizeSet bool
}

// settingsFlags holds flags for the settings command.
type settingsFlags struct {
	common     commonFlags
	conversion conversionFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.settings, "settings", "", "settings file (YAML or Obsidian data.json)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addConversionFlags adds the per-setting override flags to a FlagSet.
func addConversionFlags(fs *flag.FlagSet, f *conversionFlags) {
	for i := range f.headings {
		level := i + 1
		fs.StringVar(&f.headings[i], fmt.Sprintf("h%d", level), "",
			fmt.Sprintf("level %d heading: h1, h2, bold, plain", level))
	}
	fs.StringVar(&f.highlight, "highlight", "", "==highlight==: mark, bold, italic, plain")
	fs.StringVar(&f.inlineCode, "inline-code", "", "`inline code`: bold, plain")
	fs.StringVar(&f.links, "links", "", "[[internal links]]: markdown, plain, remove")
	fs.StringVar(&f.mermaid, "mermaid", "", "mermaid diagrams: text, code")
	fs.StringVar(&f.mermaidText, "mermaid-text", "", "replacement text for mermaid diagrams")
	fs.StringVar(&f.checkboxUnchecked, "checkbox-unchecked", "", "symbol for - [ ]")
	fs.StringVar(&f.checkboxChecked, "checkbox-checked", "", "symbol for - [x]")
	fs.BoolVar(&f.strict, "strict", false, "reject unknown setting values instead of falling back")
}

// addExportFlags adds export step flags to a FlagSet.
func addExportFlags(fs *flag.FlagSet, f *exportFlags) {
	fs.BoolVar(&f.sanitize, "sanitize", false, "escape characters the note.com editor mangles")
	fs.BoolVar(&f.copy, "copy", false, "copy the sanitized result to the clipboard")
	fs.BoolVar(&f.open, "open", false, "copy, then open the note.com editor")
	fs.BoolVar(&f.preview, "preview", false, "open an HTML preview in the browser")
	fs.StringVar(&f.style, "style", "", "preview style name")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/<name>.css")
	fs.StringSliceVar(&f.attachments, "attachments", nil, "preview image directories, relative to the note")
}

// registerConvertFlags registers every convert flag on fs.
// Shared by parsing and shell completion.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- for stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addConversionFlags(fs, &f.conversion)
	addExportFlags(fs, &f.export)
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}
	registerConvertFlags(fs, f)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.sanitizeSet = fs.Changed("sanitize")
	markLiteralFlags(fs, &f.conversion)
	return f, fs.Args(), nil
}

// registerSettingsFlags registers every settings command flag on fs.
func registerSettingsFlags(fs *flag.FlagSet, f *settingsFlags) {
	addCommonFlags(fs, &f.common)
	addConversionFlags(fs, &f.conversion)
}

// parseSettingsFlags parses settings command flags.
func parseSettingsFlags(args []string, stderr io.Writer) (*settingsFlags, []string, error) {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &settingsFlags{}
	registerSettingsFlags(fs, f)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	markLiteralFlags(fs, &f.conversion)
	return f, fs.Args(), nil
}

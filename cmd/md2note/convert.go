package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	md2note "github.com/alnah/go-md2note"
	"github.com/alnah/go-md2note/internal/config"
)

// stdinPath is the input name for standard input, and the --output value
// for standard output.
const stdinPath = "-"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, envCfg *envConfig, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfigFor(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	settings, err := resolveSettings(flags.common.settings, &flags.conversion, envCfg, cfg)
	if err != nil {
		return err
	}
	conv := md2note.NewConverter(settings, md2note.WithLogger(env.Logger))
	plan := buildExportPlan(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	output := resolveOutputDir(flags.output, cfg)

	if inputPath == stdinPath {
		return convertStdin(ctx, conv, output, plan, env)
	}

	// Stdout output bypasses discovery's output paths.
	discoverOutput := output
	if output == stdinPath {
		discoverOutput = ""
	}

	files, err := discoverFiles(inputPath, discoverOutput)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	if output == stdinPath {
		if len(files) > 1 {
			return fmt.Errorf("%w: found %d files in %s", ErrStdoutMultiple, len(files), inputPath)
		}
		return convertToStdout(ctx, conv, files[0].InputPath, plan, env)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers, len(files))
	env.Logger.Debug().Int("files", len(files)).Int("workers", workers).Msg("converting")

	opts := batchOptions{
		sanitize: plan.sanitizeFiles,
		title:    plan.preview && len(files) == 1,
	}
	results := convertBatch(ctx, conv, files, workers, opts)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	if !plan.active() {
		return nil
	}
	if len(results) > 1 {
		env.Logger.Warn().Int("files", len(results)).Msg("export steps need a single note; skipped")
		return nil
	}
	return runExports(ctx, results[0], filepath.Dir(results[0].InputPath), plan, env)
}

// convertStdin converts standard input to output, or to stdout when output
// is empty or "-". Relative preview images resolve from the working directory.
func convertStdin(ctx context.Context, conv NoteConverter, output string, plan exportPlan, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	result := ConversionResult{
		InputPath: stdinPath,
		Markdown:  conv.Convert(string(content)),
	}
	if plan.preview {
		result.Title = md2note.ExtractTitle(string(content))
	}

	if output == "" || output == stdinPath {
		if err := writeNote(env.Stdout, result.Markdown, plan.sanitizeFiles); err != nil {
			return err
		}
	} else {
		outPath := resolveOutputPath("stdin.md", output, "")
		if err := writeResultFile(outPath, result.Markdown, plan.sanitizeFiles); err != nil {
			return err
		}
		env.Logger.Info().Str("path", outPath).Msg("created")
	}

	if !plan.active() {
		return nil
	}
	return runExports(ctx, result, ".", plan, env)
}

// convertToStdout converts a single file and prints the result.
func convertToStdout(ctx context.Context, conv NoteConverter, inputPath string, plan exportPlan, env *Environment) error {
	content, err := readMarkdown(inputPath)
	if err != nil {
		return err
	}

	result := ConversionResult{
		InputPath: inputPath,
		Markdown:  conv.Convert(content),
	}
	if plan.preview {
		result.Title = md2note.ExtractTitle(content)
	}
	if err := writeNote(env.Stdout, result.Markdown, plan.sanitizeFiles); err != nil {
		return err
	}

	if !plan.active() {
		return nil
	}
	return runExports(ctx, result, filepath.Dir(inputPath), plan, env)
}

// writeNote writes converted Markdown to w, sanitized if requested.
func writeNote(w io.Writer, markdown string, sanitize bool) error {
	if sanitize {
		markdown = md2note.Sanitize(markdown)
	}
	if _, err := io.WriteString(w, markdown); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// loadConfigFor loads the config named by the flag, else by MD2NOTE_CONFIG.
// Without either, the defaults apply.
func loadConfigFor(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges export flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.sanitizeSet {
		cfg.Export.Sanitize = flags.export.sanitize
	}
	if flags.export.copy {
		cfg.Export.Copy = true
	}
	if flags.export.open {
		cfg.Export.OpenEditor = true
	}
	if flags.export.preview {
		cfg.Preview.Enabled = true
	}
	if flags.export.style != "" {
		cfg.Preview.Style = flags.export.style
	}
	if flags.export.assetPath != "" {
		cfg.Assets.BasePath = flags.export.assetPath
	}
	if len(flags.export.attachments) > 0 {
		cfg.Preview.AttachmentDirs = flags.export.attachments
	}
}

// resolveSettings builds the conversion settings.
// Priority: flags > settings file (flag, then MD2NOTE_SETTINGS) > config
// conversion block > defaults. In strict mode unknown values are rejected.
func resolveSettings(settingsPath string, cf *conversionFlags, envCfg *envConfig, cfg *config.Config) (md2note.Settings, error) {
	if settingsPath == "" {
		settingsPath = envCfg.SettingsPath
	}

	var s md2note.Settings
	if settingsPath != "" {
		loaded, err := md2note.LoadSettings(settingsPath)
		if err != nil {
			return md2note.Settings{}, fmt.Errorf("loading settings: %w", err)
		}
		s = loaded
	} else {
		s = md2note.MigrateSettings(cfg.Conversion)
	}

	applyConversionFlags(cf, &s)

	if cf.strict {
		if err := s.Validate(); err != nil {
			return md2note.Settings{}, err
		}
	}
	return s, nil
}

// applyConversionFlags overlays the given conversion flags onto s.
func applyConversionFlags(cf *conversionFlags, s *md2note.Settings) {
	headings := [6]*md2note.HeadingConversion{
		&s.H1Conversion, &s.H2Conversion, &s.H3Conversion,
		&s.H4Conversion, &s.H5Conversion, &s.H6Conversion,
	}
	for i, v := range cf.headings {
		if v != "" {
			*headings[i] = md2note.HeadingConversion(v)
		}
	}

	if cf.highlight != "" {
		s.HighlightConversion = md2note.HighlightConversion(cf.highlight)
	}
	if cf.inlineCode != "" {
		s.InlineCodeConversion = md2note.InlineCodeConversion(cf.inlineCode)
	}
	if cf.links != "" {
		s.InternalLinkConversion = md2note.LinkConversion(cf.links)
	}
	if cf.mermaid != "" {
		s.MermaidConversionType = md2note.MermaidConversion(cf.mermaid)
	}
	if cf.mermaidTextSet || cf.mermaidText != "" {
		s.MermaidReplacementText = cf.mermaidText
	}
	if cf.checkboxUncheckedSet || cf.checkboxUnchecked != "" {
		s.CheckboxUnchecked = cf.checkboxUnchecked
	}
	if cf.checkboxCheckedSet || cf.checkboxChecked != "" {
		s.CheckboxChecked = cf.checkboxChecked
	}
}

// resolveInputPath returns the positional input, else the config default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

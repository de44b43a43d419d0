package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"unicode/utf8"

	md2note "github.com/alnah/go-md2note"
	"github.com/alnah/go-md2note/internal/config"
	"github.com/alnah/go-md2note/internal/fileutil"
	"github.com/alnah/go-md2note/internal/hints"
)

// exportPlan lists the steps run after a single note is converted.
type exportPlan struct {
	sanitizeFiles bool
	copy          bool
	sanitizeCopy  bool
	openEditor    bool
	editorURL     string

	preview        bool
	style          string
	assetPath      string
	attachmentDirs []string
}

// buildExportPlan resolves the export steps from the merged config.
// Copies are sanitized unless --sanitize=false was given explicitly.
func buildExportPlan(flags *convertFlags, cfg *config.Config) exportPlan {
	return exportPlan{
		sanitizeFiles:  cfg.Export.Sanitize,
		copy:           cfg.Export.Copy || cfg.Export.OpenEditor,
		sanitizeCopy:   !flags.sanitizeSet || flags.export.sanitize,
		openEditor:     cfg.Export.OpenEditor,
		editorURL:      cfg.EffectiveEditorURL(),
		preview:        cfg.Preview.Enabled,
		style:          cfg.Preview.Style,
		assetPath:      cfg.Assets.BasePath,
		attachmentDirs: cfg.Preview.AttachmentDirs,
	}
}

// active reports whether any export step is requested.
func (p exportPlan) active() bool {
	return p.copy || p.openEditor || p.preview
}

// runExports copies, opens the editor and previews one converted note.
// Clipboard and browser failures are logged and never fail the conversion.
func runExports(ctx context.Context, r ConversionResult, sourceDir string, plan exportPlan, env *Environment) error {
	if plan.copy {
		text := r.Markdown
		if plan.sanitizeCopy {
			text = md2note.Sanitize(text)
		}
		if err := env.Clipboard(text); err != nil {
			env.Logger.Warn().Err(err).Msg("could not copy to clipboard" + hints.ForClipboard())
		} else {
			env.Logger.Info().Int("chars", utf8.RuneCountInString(text)).Msg("copied to clipboard")
		}
	}

	if plan.openEditor {
		if err := env.OpenURL(plan.editorURL); err != nil {
			env.Logger.Warn().Err(err).Str("url", plan.editorURL).
				Msg("could not open the note.com editor" + hints.ForBrowserOpen())
		}
	}

	if plan.preview {
		return showPreview(ctx, r, sourceDir, plan, env)
	}
	return nil
}

// showPreview renders the preview page to a temp file and opens it.
// The file is left in place for the browser to load.
func showPreview(ctx context.Context, r ConversionResult, sourceDir string, plan exportPlan, env *Environment) error {
	page, err := md2note.RenderPreview(ctx, r.Markdown, md2note.PreviewOptions{
		Title:          r.Title,
		Style:          plan.style,
		AssetPath:      plan.assetPath,
		SourceDir:      sourceDir,
		AttachmentDirs: plan.attachmentDirs,
	})
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	path, _, err := fileutil.WriteTempFile(string(page), "html")
	if err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	env.Logger.Info().Str("path", path).Msg("preview written")

	if err := env.OpenURL(fileURL(path)); err != nil {
		env.Logger.Warn().Err(err).Msg("could not open the preview" + hints.ForBrowserOpen())
	}
	return nil
}

// fileURL converts a local path to a file:// URL.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

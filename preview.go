package md2note

import (
	"context"

	"github.com/alnah/go-md2note/internal/pipeline"
)

// PreviewOptions configures RenderPreview.
type PreviewOptions struct {
	// Title of the page. Defaults to ExtractTitle of the rendered Markdown;
	// pass the title of the source note, which still has its frontmatter.
	Title string

	// Style is the stylesheet name, DefaultStyle when empty.
	Style string

	// AssetPath is an optional directory holding styles/<name>.css files
	// that take precedence over the built-in ones.
	AssetPath string

	// CSS is appended after the stylesheet.
	CSS string

	// SourceDir is the directory of the source note. Relative images are
	// resolved against it, then against each of AttachmentDirs.
	SourceDir      string
	AttachmentDirs []string
}

var previewRenderer pipeline.PreviewRenderer = pipeline.NewGoldmarkPreview()

// RenderPreview renders converted Markdown as a standalone HTML page showing
// both the rendered note and the exact text that will be pasted.
// Raw HTML in the Markdown is not rendered, except the <mark>, <sup> and
// <sub> tags the converter emits.
func RenderPreview(ctx context.Context, markdown string, opts PreviewOptions) ([]byte, error) {
	css, err := loadStyle(opts.AssetPath, opts.Style)
	if err != nil {
		return nil, err
	}
	if opts.CSS != "" {
		css += "\n" + opts.CSS
	}

	title := opts.Title
	if title == "" {
		title = ExtractTitle(markdown)
	}

	page, err := previewRenderer.RenderPreview(ctx, markdown, pipeline.PreviewPage{
		Title:          title,
		CSS:            css,
		SourceDir:      opts.SourceDir,
		AttachmentDirs: opts.AttachmentDirs,
	})
	if err != nil {
		return nil, err
	}
	return []byte(page), nil
}

// ExtractTitle returns the frontmatter "title" of a note, or the text of its
// first heading, or "" when it has neither.
func ExtractTitle(markdown string) string {
	return pipeline.ExtractTitle(markdown)
}

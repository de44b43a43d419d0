package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrPreviewRender indicates the preview page could not be rendered.
var ErrPreviewRender = errors.New("preview rendering failed")

// previewTemplate shows the rendered note next to the literal Markdown that
// will be pasted, since the editor input is the text, not the rendering.
const previewTemplate = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>%s</style>
</head>
<body>
<main class="note-rendered">
%s
</main>
<section class="note-source">
<h2>Markdown</h2>
<pre>%s</pre>
</section>
</body>
</html>`

// Inline tags the converter emits are swapped for Private Use Area
// placeholders before Goldmark runs, so raw HTML stays disabled.
var inlineTagPlaceholders = [][2]string{
	{"<mark>", "\uE020"},
	{"</mark>", "\uE021"},
	{"<sup>", "\uE022"},
	{"</sup>", "\uE023"},
	{"<sub>", "\uE024"},
	{"</sub>", "\uE025"},
}

// Image destinations with spaces ("Pasted image 1.png") are not valid
// CommonMark links unless wrapped in angle brackets.
var spacedImagePattern = regexp.MustCompile(`!\[([^\]\n]*)\]\(([^()<>\n]*[ \t][^()<>\n]*)\)`)

var (
	inlineTagsToPlaceholders = newPairReplacer(false)
	placeholdersToInlineTags = newPairReplacer(true)
)

func newPairReplacer(reverse bool) *strings.Replacer {
	args := make([]string, 0, len(inlineTagPlaceholders)*2)
	for _, p := range inlineTagPlaceholders {
		if reverse {
			args = append(args, p[1], p[0])
		} else {
			args = append(args, p[0], p[1])
		}
	}
	return strings.NewReplacer(args...)
}

// PreviewPage carries everything rendered around the converted Markdown.
type PreviewPage struct {
	Title          string
	CSS            string
	SourceDir      string   // directory of the source note, for images
	AttachmentDirs []string // extra image lookup directories, relative to SourceDir
}

// PreviewRenderer renders converted Markdown as a standalone HTML page.
type PreviewRenderer interface {
	RenderPreview(ctx context.Context, markdown string, page PreviewPage) (string, error)
}

// GoldmarkPreview renders previews using goldmark (pure Go).
type GoldmarkPreview struct {
	md goldmark.Markdown
}

// NewGoldmarkPreview creates a GoldmarkPreview with GFM and syntax highlighting.
// Hard wraps match the note.com editor, where every newline is a line break.
func NewGoldmarkPreview() *GoldmarkPreview {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles: the page is a single file
				),
			),
		),
		goldmark.WithRendererOptions(
			goldhtml.WithHardWraps(),
			goldhtml.WithXHTML(),
		),
	)
	return &GoldmarkPreview{md: md}
}

// RenderPreview converts markdown to a preview page.
// Goldmark has no context support, so it runs in a goroutine raced against ctx.
func (p *GoldmarkPreview) RenderPreview(ctx context.Context, markdown string, page PreviewPage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		src := spacedImagePattern.ReplaceAllString(markdown, "![${1}](<${2}>)")
		src = inlineTagsToPlaceholders.Replace(src)

		var buf bytes.Buffer
		if err := p.md.Convert([]byte(src), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}

		body := placeholdersToInlineTags.Replace(buf.String())
		body, err := ResolveImagePaths(body, page.SourceDir, page.AttachmentDirs)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: resolving images: %v", ErrPreviewRender, err)}
			return
		}

		done <- result{html: fmt.Sprintf(previewTemplate,
			html.EscapeString(page.Title),
			sanitizeCSS(page.CSS),
			body,
			html.EscapeString(markdown),
		)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

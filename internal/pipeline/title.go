package pipeline

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// titleMatter is the part of the frontmatter used for titles.
type titleMatter struct {
	Title string `yaml:"title"`
}

// ExtractTitle returns the note title: the frontmatter "title" field if set,
// otherwise the text of the first heading, otherwise "".
// Malformed frontmatter is ignored and the body is searched for a heading.
func ExtractTitle(markdown string) string {
	src := []byte(normalizeLineEndings(markdown))

	var meta titleMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err == nil {
		if title := strings.TrimSpace(meta.Title); title != "" {
			return title
		}
	} else {
		body = []byte(RemoveFrontmatter(string(src)))
	}

	return firstHeading(body)
}

// firstHeading returns the plain text of the first heading in src.
func firstHeading(src []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(nodeText(h, src))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// nodeText concatenates the text segments below n.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var (
	// C0 controls and DEL, except \t, \n and \r (handled by line ending normalization)
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

	// Zero-width space, non-joiner, joiner and BOM
	zeroWidthChars = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}]`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Spaces and tabs at end of line
	trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)
)

// editorEscaper rewrites characters the note.com editor mangles on paste.
// Backslashes are doubled; brackets and parentheses become full-width.
var editorEscaper = strings.NewReplacer(
	`\`, `\\`,
	"[", width.Widen.String("["),
	"]", width.Widen.String("]"),
	"(", width.Widen.String("("),
	")", width.Widen.String(")"),
)

// Sanitize prepares converted Markdown for pasting into the note.com editor.
// It is an export step: the preview shows the unsanitized text.
func Sanitize(content string) string {
	content = controlChars.ReplaceAllString(content, "")
	content = zeroWidthChars.ReplaceAllString(content, "")
	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	content = trailingWhitespace.ReplaceAllString(content, "")
	return editorEscaper.Replace(content)
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

package md2note

import "github.com/alnah/go-md2note/internal/pipeline"

// Sanitize prepares converted Markdown for pasting into the note.com editor.
// It removes control and zero-width characters, normalizes line endings,
// collapses runs of blank lines, trims trailing spaces, doubles backslashes
// and turns square brackets and parentheses full-width.
//
// Sanitize is an export step. Convert does not call it.
func Sanitize(content string) string {
	return pipeline.Sanitize(content)
}

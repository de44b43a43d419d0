package pipeline

import (
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Leading ---\n...\n--- block; the body may be empty
	frontmatterPattern = regexp.MustCompile(`\A---\n(?:(?s:.*?)\n)?---(?:\n|\z)`)

	// Blank lines left at the top of the document
	leadingNewlines = regexp.MustCompile(`\A\n+`)
)

// NoteConverter rewrites Obsidian Markdown into note.com Markdown.
// It is immutable once built and safe for concurrent use.
type NoteConverter struct {
	rules Rules
	chain Chain
}

// NewNoteConverter creates a NoteConverter running DefaultChain with rules.
func NewNoteConverter(rules Rules) *NoteConverter {
	return &NoteConverter{rules: rules, chain: DefaultChain()}
}

// Rules returns the rules the converter was built with.
func (c *NoteConverter) Rules() Rules {
	return c.rules
}

// Convert runs the full conversion:
// normalize, strip frontmatter, protect, rewrite, restore.
// Each call owns its own vault; nothing is shared between calls.
func (c *NoteConverter) Convert(content string) string {
	content = normalizeLineEndings(content)
	content = RemoveFrontmatter(content)

	content, v := Protect(content, c.rules)
	content = c.chain.Run(content, c.rules)
	return v.Restore(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// RemoveFrontmatter strips a leading ---\n...\n--- block and any blank lines
// at the top of the document. Only the first block at offset 0 is removed.
func RemoveFrontmatter(content string) string {
	if loc := frontmatterPattern.FindStringIndex(content); loc != nil {
		content = content[loc[1]:]
	}
	return leadingNewlines.ReplaceAllString(content, "")
}

// Package pipeline implements the Obsidian-to-note.com conversion engine.
//
// A conversion is a fixed sequence of stages over one string:
//   - Line ending normalization and leading frontmatter removal
//   - Protection: fenced code, $$ block math and ~~strikethrough~~ are lifted
//     into a per-call Vault and replaced by Private Use Area placeholders
//   - Rewrite passes (headings, embeds, wiki links, inline formatting,
//     checkboxes, ordered lists), each a Pass over the whole document
//   - The nested-list flattener, a two-state line scanner
//   - Restoration of the vault by placeholder index
//
// Passes never fail; input they do not recognize is returned unchanged.
// Export sanitization (Sanitize) and the HTML preview (GoldmarkPreview) run
// on the converted text and are not part of Convert.
package pipeline

// Package md2note converts Obsidian-flavored Markdown into the Markdown
// accepted by the note.com editor.
//
// # Quick Start
//
// Build a converter from settings and convert text:
//
//	conv := md2note.NewConverter(md2note.DefaultSettings())
//	out := conv.Convert("# Title\n\n==important== [[Other note|see also]]")
//
// Convert never fails: constructs it does not recognize pass through
// unchanged, and unknown setting values fall back to plain text.
//
// # Conversion Stages
//
//  1. Line endings are normalized and leading frontmatter is removed.
//  2. Fenced code blocks, $$block math$$ and ~~strikethrough~~ are replaced
//     by placeholders so later rewrites cannot touch them.
//  3. Headings, image embeds, internal links, inline formatting, checkboxes,
//     numbered lists, nested lists and blockquotes are rewritten in order.
//  4. The placeholders are restored.
//
// # Settings
//
// Settings mirror the Obsidian plugin's data.json. ParseSettings and
// LoadSettings read YAML or JSON and migrate legacy keys; Settings.Validate
// reports typos for callers that want to reject them.
//
//	s, err := md2note.LoadSettings("data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv := md2note.NewConverter(s, md2note.WithLogger(logger))
//
// # Export and Preview
//
// Sanitize escapes the characters the note.com editor mangles on paste.
// RenderPreview builds a standalone HTML page with the rendered note and the
// Markdown to paste, styled like note.com.
//
// # Concurrency
//
// A Converter is immutable and may be shared by goroutines.
package md2note

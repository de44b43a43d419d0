package pipeline

import "regexp"

var (
	// Inline math $x$, kept on one line so prices across lines do not pair up
	inlineMathPattern = regexp.MustCompile(`\$([^$\n]+)\$`)

	// Highlight ==text==
	highlightPattern = regexp.MustCompile(`==(.+?)==`)

	// Superscript ^[text]
	superscriptPattern = regexp.MustCompile(`\^\[(.+?)\]`)

	// Subscript ~text~ (strikethrough is already protected)
	subscriptPattern = regexp.MustCompile(`~([^~\n]+)~`)
)

// ConvertInlineFormatting rewrites inline code, inline math, highlights,
// superscript and subscript. Superscript and subscript become <sup> and
// <sub>, which the note.com editor keeps.
func ConvertInlineFormatting(content string, r Rules) string {
	content = convertInlineCode(content, r.InlineCode)
	content = inlineMathPattern.ReplaceAllString(content, "${1}")
	content = convertHighlights(content, r.Highlight)
	content = superscriptPattern.ReplaceAllString(content, "<sup>${1}</sup>")
	content = subscriptPattern.ReplaceAllString(content, "<sub>${1}</sub>")
	return content
}

func convertInlineCode(content string, style InlineCodeStyle) string {
	switch style {
	case InlineCodeBold:
		return inlineCodePattern.ReplaceAllString(content, "**${1}**")
	default:
		return inlineCodePattern.ReplaceAllString(content, "${1}")
	}
}

// convertHighlights transforms ==text== per HighlightStyle.
func convertHighlights(content string, style HighlightStyle) string {
	switch style {
	case HighlightMark:
		return highlightPattern.ReplaceAllString(content, "<mark>${1}</mark>")
	case HighlightBold:
		return highlightPattern.ReplaceAllString(content, "**${1}**")
	case HighlightItalic:
		return highlightPattern.ReplaceAllString(content, "*${1}*")
	default:
		return highlightPattern.ReplaceAllString(content, "${1}")
	}
}

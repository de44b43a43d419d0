package pipeline

import "regexp"

var (
	// ATX heading: 1-6 hashes, one space, text
	headingPattern = regexp.MustCompile(`(?m)^(#{1,6}) (.+)$`)

	// Highlight syntax ==text==
	headingHighlightPattern = regexp.MustCompile(`==(.*?)==`)

	// Inline code `text`
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// ConvertHeadings rewrites "# text" lines per the level's HeadingStyle.
// Highlight and inline-code markers inside the heading are dropped first;
// note.com shows them literally inside headings.
func ConvertHeadings(content string, r Rules) string {
	return replaceSubmatchFunc(headingPattern, content, func(g []string) string {
		return formatHeading(stripHeadingDecorations(g[2]), r.Heading(len(g[1])))
	})
}

func stripHeadingDecorations(text string) string {
	text = headingHighlightPattern.ReplaceAllString(text, "${1}")
	return inlineCodePattern.ReplaceAllString(text, "${1}")
}

func formatHeading(text string, style HeadingStyle) string {
	switch style {
	case HeadingLarge:
		return "# " + text
	case HeadingSmall:
		return "### " + text
	case HeadingBold:
		return "**" + text + "**"
	default:
		return text
	}
}

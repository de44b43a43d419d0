package pipeline

import "regexp"

var (
	// Task list items, indentation kept
	uncheckedPattern = regexp.MustCompile(`(?m)^([ \t]*)- \[ \] (.+)$`)
	checkedPattern   = regexp.MustCompile(`(?m)^([ \t]*)- \[[xX]\] (.+)$`)

	// "1) text" ordered list marker
	parenListPattern = regexp.MustCompile(`(?m)^(\d+)\)[ \t]+(.*)$`)

	// Quote marker plus whatever spacing follows it (ASCII or full-width)
	blockquotePattern = regexp.MustCompile(`(?m)^>[ \t\x{3000}]*`)
)

// quotePrefix is the quote marker note.com needs: ">" plus a full-width space.
const quotePrefix = ">\u3000"

// ConvertCheckboxes substitutes the configured symbols for "- [ ]" and "- [x]".
func ConvertCheckboxes(content string, r Rules) string {
	content = replaceSubmatchFunc(uncheckedPattern, content, func(g []string) string {
		return g[1] + r.CheckboxUnchecked + " " + g[2]
	})
	return replaceSubmatchFunc(checkedPattern, content, func(g []string) string {
		return g[1] + r.CheckboxChecked + " " + g[2]
	})
}

// ConvertNumberedLists rewrites "1) text" as "1. text".
func ConvertNumberedLists(content string, _ Rules) string {
	return parenListPattern.ReplaceAllString(content, "${1}. ${2}")
}

// ConvertBlockquotes normalizes every quote marker to ">" and one full-width
// space, whatever spacing the source used.
func ConvertBlockquotes(content string, _ Rules) string {
	return blockquotePattern.ReplaceAllLiteralString(content, quotePrefix)
}

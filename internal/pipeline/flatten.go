package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Ordered list item with either marker: "1. text" or "1) text"
	numberedItemPattern = regexp.MustCompile(`^(\d+)[.)][ \t]+(.*)$`)

	// Leading indentation
	indentPattern = regexp.MustCompile(`^[ \t]+`)

	// Indented quote line under a list item
	nestedQuotePattern = regexp.MustCompile(`^[ \t]+>[ \t]*(.*)$`)

	// Indented bullet under a list item; a bare marker is an empty item
	nestedBulletPattern = regexp.MustCompile(`^[ \t]+[-*](?:[ \t]+(.*))?$`)
)

// flattenState is the state of the nested-list scanner.
type flattenState int

const (
	scanning        flattenState = iota // looking for a numbered item
	consumingNested                     // pulling indented lines up to top level
)

// FlattenNestedLists pulls indented content under numbered items up to the
// top level, since note.com cannot render blocks nested in an ordered list.
// Quotes stay quotes, bullets stay bullets, other text is de-indented.
// The first non-indented, non-blank line ends the item and is scanned anew.
func FlattenNestedLists(content string, _ Rules) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	state := scanning

	for i := 0; i < len(lines); {
		line := lines[i]

		if state == scanning {
			if m := numberedItemPattern.FindStringSubmatch(line); m != nil {
				out = append(out, m[1]+". "+m[2])
				state = consumingNested
			} else {
				out = append(out, line)
			}
			i++
			continue
		}

		switch {
		case indentPattern.MatchString(line):
			if text, keep := flattenIndented(line); keep {
				out = append(out, text)
			}
			i++
		case strings.TrimSpace(line) == "":
			out = append(out, "")
			i++
		default:
			// Not consumed: re-read in scanning state.
			state = scanning
		}
	}

	return strings.Join(out, "\n")
}

// flattenIndented de-indents one nested line. keep is false for lines that
// hold only whitespace.
func flattenIndented(line string) (text string, keep bool) {
	if m := nestedQuotePattern.FindStringSubmatch(line); m != nil {
		return quotePrefix + m[1], true
	}
	if m := nestedBulletPattern.FindStringSubmatch(line); m != nil {
		return "- " + m[1], true
	}
	trimmed := strings.TrimSpace(line)
	return trimmed, trimmed != ""
}

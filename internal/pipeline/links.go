package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Embedded file ![[name|alias]]
	imageLinkPattern = regexp.MustCompile(`!\[\[(.+?)\]\]`)

	// Wiki link [[target|alias]]
	internalLinkPattern = regexp.MustCompile(`\[\[(.+?)\]\]`)
)

// ConvertImageLinks turns ![[file|alias]] into ![file](file).
// The alias is a display size or caption in Obsidian and is discarded.
func ConvertImageLinks(content string, _ Rules) string {
	return replaceSubmatchFunc(imageLinkPattern, content, func(g []string) string {
		name, _, _ := strings.Cut(g[1], "|")
		name = strings.TrimSpace(name)
		return "![" + name + "](" + name + ")"
	})
}

// ConvertInternalLinks rewrites [[target|alias]] per Rules.InternalLinks.
// Without an alias the target doubles as display text.
func ConvertInternalLinks(content string, r Rules) string {
	return replaceSubmatchFunc(internalLinkPattern, content, func(g []string) string {
		target, alias, hasAlias := strings.Cut(g[1], "|")
		display := target
		if hasAlias {
			display = alias
		}

		switch r.InternalLinks {
		case LinkMarkdown:
			return "[" + display + "](" + target + ")"
		case LinkRemove:
			return ""
		default:
			return display
		}
	})
}

package pipeline

import (
	"regexp"
	"strings"
)

// Pass rewrites a whole document. A pass never fails: input it does not
// recognize comes back unchanged.
type Pass func(content string, r Rules) string

// Chain is an ordered list of passes applied left to right.
type Chain []Pass

// Run folds content through every pass of the chain.
func (c Chain) Run(content string, r Rules) string {
	for _, pass := range c {
		content = pass(content, r)
	}
	return content
}

// DefaultChain returns the rewrite order used between protection and
// restoration. Checkboxes and numbered lists are normalized before the
// flattener so it only sees canonical markers; blockquote spacing runs last
// because the flattener emits quote lines of its own.
func DefaultChain() Chain {
	return Chain{
		ConvertHeadings,
		ConvertImageLinks,
		ConvertInternalLinks,
		ConvertInlineFormatting,
		ConvertCheckboxes,
		ConvertNumberedLists,
		FlattenNestedLists,
		ConvertBlockquotes,
	}
}

// replaceSubmatchFunc is regexp.ReplaceAllStringFunc with access to the
// capture groups. Unmatched optional groups are reported as "".
// The replacement is inserted literally, so user text containing "$" is safe.
func replaceSubmatchFunc(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

package pipeline

// HeadingStyle is the rendering chosen for one heading level.
type HeadingStyle int

// Heading styles. The zero value strips the heading marker.
const (
	HeadingPlain HeadingStyle = iota
	HeadingLarge              // note.com large heading: "# "
	HeadingSmall              // note.com small heading: "### "
	HeadingBold
)

// HighlightStyle is the rendering of ==highlight== spans.
type HighlightStyle int

// Highlight styles.
const (
	HighlightPlain HighlightStyle = iota
	HighlightMark
	HighlightBold
	HighlightItalic
)

// InlineCodeStyle is the rendering of `inline code` spans.
type InlineCodeStyle int

// Inline code styles.
const (
	InlineCodePlain InlineCodeStyle = iota
	InlineCodeBold
)

// LinkStyle is the rendering of [[wiki links]].
type LinkStyle int

// Link styles.
const (
	LinkPlain LinkStyle = iota
	LinkMarkdown
	LinkRemove
)

// MermaidMode selects how ```mermaid fences are emitted.
type MermaidMode int

// Mermaid modes. The zero value keeps the diagram source.
const (
	MermaidCode MermaidMode = iota
	MermaidText
)

// MaxHeadingLevel is the deepest ATX heading level.
const MaxHeadingLevel = 6

// Rules is the resolved, closed form of the user settings.
// Every field holds a known variant, so passes switch without string parsing.
type Rules struct {
	Headings          [MaxHeadingLevel]HeadingStyle
	Highlight         HighlightStyle
	InlineCode        InlineCodeStyle
	InternalLinks     LinkStyle
	CheckboxUnchecked string
	CheckboxChecked   string
	Mermaid           MermaidMode
	MermaidText       string
}

// Heading returns the style for a 1-based heading level.
// Levels outside 1..6 render as plain text.
func (r Rules) Heading(level int) HeadingStyle {
	if level < 1 || level > MaxHeadingLevel {
		return HeadingPlain
	}
	return r.Headings[level-1]
}

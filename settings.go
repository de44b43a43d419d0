package md2note

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HeadingConversion is how one heading level is rendered on note.com.
type HeadingConversion string

// Heading conversions. note.com has two heading sizes.
const (
	HeadingH1    HeadingConversion = "h1"    // large heading
	HeadingH2    HeadingConversion = "h2"    // small heading
	HeadingBold  HeadingConversion = "bold"  // **text**
	HeadingPlain HeadingConversion = "plain" // text only
)

// Valid reports whether h is a known heading conversion.
func (h HeadingConversion) Valid() bool {
	switch h {
	case HeadingH1, HeadingH2, HeadingBold, HeadingPlain:
		return true
	}
	return false
}

// HighlightConversion is how ==highlight== spans are rendered.
type HighlightConversion string

// Highlight conversions.
const (
	HighlightMark   HighlightConversion = "mark"
	HighlightBold   HighlightConversion = "bold"
	HighlightItalic HighlightConversion = "italic"
	HighlightPlain  HighlightConversion = "plain"
)

// Valid reports whether h is a known highlight conversion.
func (h HighlightConversion) Valid() bool {
	switch h {
	case HighlightMark, HighlightBold, HighlightItalic, HighlightPlain:
		return true
	}
	return false
}

// InlineCodeConversion is how `inline code` spans are rendered.
type InlineCodeConversion string

// Inline code conversions.
const (
	InlineCodeBold  InlineCodeConversion = "bold"
	InlineCodePlain InlineCodeConversion = "plain"
)

// Valid reports whether c is a known inline code conversion.
func (c InlineCodeConversion) Valid() bool {
	return c == InlineCodeBold || c == InlineCodePlain
}

// LinkConversion is how [[internal links]] are rendered.
type LinkConversion string

// Link conversions.
const (
	LinkMarkdown LinkConversion = "markdown" // [alias](target)
	LinkPlain    LinkConversion = "plain"    // alias
	LinkRemove   LinkConversion = "remove"   // dropped
)

// Valid reports whether l is a known link conversion.
func (l LinkConversion) Valid() bool {
	switch l {
	case LinkMarkdown, LinkPlain, LinkRemove:
		return true
	}
	return false
}

// MermaidConversion is how ```mermaid fences are emitted.
type MermaidConversion string

// Mermaid conversions.
const (
	MermaidText MermaidConversion = "text" // replaced by MermaidReplacementText
	MermaidCode MermaidConversion = "code" // kept as a plain code block
)

// Valid reports whether m is a known mermaid conversion.
func (m MermaidConversion) Valid() bool {
	return m == MermaidText || m == MermaidCode
}

// Default marker and replacement values.
const (
	DefaultCheckboxUnchecked      = "□"
	DefaultCheckboxChecked        = "☑"
	DefaultMermaidReplacementText = "[Mermaid図]\n(Obsidianで表示してください)"
)

// Settings selects how each Obsidian construct is converted.
// The YAML keys match the Obsidian plugin's data.json.
type Settings struct {
	H1Conversion           HeadingConversion    `yaml:"h1Conversion" json:"h1Conversion"`
	H2Conversion           HeadingConversion    `yaml:"h2Conversion" json:"h2Conversion"`
	H3Conversion           HeadingConversion    `yaml:"h3Conversion" json:"h3Conversion"`
	H4Conversion           HeadingConversion    `yaml:"h4Conversion" json:"h4Conversion"`
	H5Conversion           HeadingConversion    `yaml:"h5Conversion" json:"h5Conversion"`
	H6Conversion           HeadingConversion    `yaml:"h6Conversion" json:"h6Conversion"`
	HighlightConversion    HighlightConversion  `yaml:"highlightConversion" json:"highlightConversion"`
	InlineCodeConversion   InlineCodeConversion `yaml:"inlineCodeConversion" json:"inlineCodeConversion"`
	InternalLinkConversion LinkConversion       `yaml:"internalLinkConversion" json:"internalLinkConversion"`
	CheckboxUnchecked      string               `yaml:"checkboxUnchecked" json:"checkboxUnchecked"`
	CheckboxChecked        string               `yaml:"checkboxChecked" json:"checkboxChecked"`
	MermaidConversionType  MermaidConversion    `yaml:"mermaidConversionType" json:"mermaidConversionType"`
	MermaidReplacementText string               `yaml:"mermaidReplacementText" json:"mermaidReplacementText"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		H1Conversion:           HeadingH1,
		H2Conversion:           HeadingH2,
		H3Conversion:           HeadingBold,
		H4Conversion:           HeadingBold,
		H5Conversion:           HeadingBold,
		H6Conversion:           HeadingBold,
		HighlightConversion:    HighlightBold,
		InlineCodeConversion:   InlineCodePlain,
		InternalLinkConversion: LinkMarkdown,
		CheckboxUnchecked:      DefaultCheckboxUnchecked,
		CheckboxChecked:        DefaultCheckboxChecked,
		MermaidConversionType:  MermaidText,
		MermaidReplacementText: DefaultMermaidReplacementText,
	}
}

// headings returns the heading conversions in level order.
func (s Settings) headings() [6]HeadingConversion {
	return [6]HeadingConversion{
		s.H1Conversion, s.H2Conversion, s.H3Conversion,
		s.H4Conversion, s.H5Conversion, s.H6Conversion,
	}
}

// Validate reports settings outside their known values.
// Convert accepts any Settings; Validate is for callers that want to reject
// typos instead of silently falling back.
func (s Settings) Validate() error {
	enumRules := []validation.Rule{validation.Required, validation.By(knownValue)}

	err := validation.ValidateStruct(&s,
		validation.Field(&s.H1Conversion, enumRules...),
		validation.Field(&s.H2Conversion, enumRules...),
		validation.Field(&s.H3Conversion, enumRules...),
		validation.Field(&s.H4Conversion, enumRules...),
		validation.Field(&s.H5Conversion, enumRules...),
		validation.Field(&s.H6Conversion, enumRules...),
		validation.Field(&s.HighlightConversion, enumRules...),
		validation.Field(&s.InlineCodeConversion, enumRules...),
		validation.Field(&s.InternalLinkConversion, enumRules...),
		validation.Field(&s.MermaidConversionType, enumRules...),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return nil
}

var errUnknownValue = validation.NewError("validation_unknown_value", "must be a known value")

// knownValue rejects enum values whose Valid method reports false.
func knownValue(value any) error {
	v, ok := value.(interface{ Valid() bool })
	if !ok || v.Valid() {
		return nil
	}
	return errUnknownValue
}

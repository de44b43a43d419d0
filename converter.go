package md2note

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md2note/internal/pipeline"
)

// Converter rewrites Obsidian Markdown into note.com Markdown.
// It is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	settings Settings
	logger   zerolog.Logger
	core     *pipeline.NoteConverter
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used to report settings that fall back to a
// default. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// NewConverter creates a Converter from a settings snapshot.
// Later changes to s have no effect on the converter.
// Unknown enum values never fail: they fall back (headings, highlight,
// inline code and links to plain, mermaid to a code block) with a warning.
// Marker and replacement strings are used as given, empty included; start
// from DefaultSettings rather than a zero Settings to get the defaults.
func NewConverter(s Settings, opts ...Option) *Converter {
	c := &Converter{settings: s, logger: zerolog.Nop()}

	for _, opt := range opts {
		opt(c)
	}

	c.core = pipeline.NewNoteConverter(c.resolveRules())
	return c
}

// Convert rewrites markdown for the note.com editor. It never fails.
func (c *Converter) Convert(markdown string) string {
	return c.core.Convert(markdown)
}

// Settings returns the settings the converter was built with.
func (c *Converter) Settings() Settings {
	return c.settings
}

// resolveRules maps the open string settings onto the closed rule enums.
func (c *Converter) resolveRules() pipeline.Rules {
	s := c.settings
	r := pipeline.Rules{
		Highlight:         c.highlight(s.HighlightConversion),
		InlineCode:        c.inlineCode(s.InlineCodeConversion),
		InternalLinks:     c.links(s.InternalLinkConversion),
		CheckboxUnchecked: s.CheckboxUnchecked,
		CheckboxChecked:   s.CheckboxChecked,
		Mermaid:           c.mermaid(s.MermaidConversionType),
		MermaidText:       s.MermaidReplacementText,
	}
	for i, h := range s.headings() {
		r.Headings[i] = c.heading(i+1, h)
	}
	return r
}

func (c *Converter) heading(level int, h HeadingConversion) pipeline.HeadingStyle {
	switch h {
	case HeadingH1:
		return pipeline.HeadingLarge
	case HeadingH2:
		return pipeline.HeadingSmall
	case HeadingBold:
		return pipeline.HeadingBold
	case HeadingPlain:
		return pipeline.HeadingPlain
	default:
		c.warnFallback(fmt.Sprintf("h%dConversion", level), string(h), string(HeadingPlain))
		return pipeline.HeadingPlain
	}
}

func (c *Converter) highlight(h HighlightConversion) pipeline.HighlightStyle {
	switch h {
	case HighlightMark:
		return pipeline.HighlightMark
	case HighlightBold:
		return pipeline.HighlightBold
	case HighlightItalic:
		return pipeline.HighlightItalic
	case HighlightPlain:
		return pipeline.HighlightPlain
	default:
		c.warnFallback("highlightConversion", string(h), string(HighlightPlain))
		return pipeline.HighlightPlain
	}
}

func (c *Converter) inlineCode(ic InlineCodeConversion) pipeline.InlineCodeStyle {
	switch ic {
	case InlineCodeBold:
		return pipeline.InlineCodeBold
	case InlineCodePlain:
		return pipeline.InlineCodePlain
	default:
		c.warnFallback("inlineCodeConversion", string(ic), string(InlineCodePlain))
		return pipeline.InlineCodePlain
	}
}

func (c *Converter) links(l LinkConversion) pipeline.LinkStyle {
	switch l {
	case LinkMarkdown:
		return pipeline.LinkMarkdown
	case LinkPlain:
		return pipeline.LinkPlain
	case LinkRemove:
		return pipeline.LinkRemove
	default:
		c.warnFallback("internalLinkConversion", string(l), string(LinkPlain))
		return pipeline.LinkPlain
	}
}

func (c *Converter) mermaid(m MermaidConversion) pipeline.MermaidMode {
	switch m {
	case MermaidText:
		return pipeline.MermaidText
	case MermaidCode:
		return pipeline.MermaidCode
	default:
		c.warnFallback("mermaidConversionType", string(m), string(MermaidCode))
		return pipeline.MermaidCode
	}
}

func (c *Converter) warnFallback(setting, value, fallback string) {
	c.logger.Warn().
		Str("setting", setting).
		Str("value", value).
		Str("fallback", fallback).
		Msg("unknown setting value")
}

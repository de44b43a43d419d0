package md2note

import (
	"fmt"
	"os"

	"github.com/alnah/go-md2note/internal/yamlutil"
)

// legacyMermaidKey is the pre-1.1 single mermaid setting: a replacement text
// that implied text mode.
const legacyMermaidKey = "mermaidConversion"

// MigrateSettings builds Settings from a decoded settings document, such as
// an Obsidian data.json or the "conversion" block of a config file.
//
// It starts from DefaultSettings, maps the legacy "mermaidConversion" text to
// text mode unless "mermaidConversionType" is present, then overlays every
// known key holding a string. Unknown keys and non-string values are ignored.
// Values are not validated: unknown enum values fall back at conversion time.
func MigrateSettings(raw map[string]any) Settings {
	s := DefaultSettings()

	if legacy, ok := raw[legacyMermaidKey].(string); ok {
		if _, hasType := raw["mermaidConversionType"]; !hasType {
			s.MermaidConversionType = MermaidText
			s.MermaidReplacementText = legacy
		}
	}

	for _, field := range settingFields {
		if str, ok := raw[field.key].(string); ok {
			field.set(&s, str)
		}
	}

	return s
}

// settingFields lists the settings keys in declaration order, each with the
// setter for its field.
var settingFields = []struct {
	key string
	set func(*Settings, string)
}{
	{"h1Conversion", func(s *Settings, v string) { s.H1Conversion = HeadingConversion(v) }},
	{"h2Conversion", func(s *Settings, v string) { s.H2Conversion = HeadingConversion(v) }},
	{"h3Conversion", func(s *Settings, v string) { s.H3Conversion = HeadingConversion(v) }},
	{"h4Conversion", func(s *Settings, v string) { s.H4Conversion = HeadingConversion(v) }},
	{"h5Conversion", func(s *Settings, v string) { s.H5Conversion = HeadingConversion(v) }},
	{"h6Conversion", func(s *Settings, v string) { s.H6Conversion = HeadingConversion(v) }},
	{"highlightConversion", func(s *Settings, v string) { s.HighlightConversion = HighlightConversion(v) }},
	{"inlineCodeConversion", func(s *Settings, v string) { s.InlineCodeConversion = InlineCodeConversion(v) }},
	{"internalLinkConversion", func(s *Settings, v string) { s.InternalLinkConversion = LinkConversion(v) }},
	{"checkboxUnchecked", func(s *Settings, v string) { s.CheckboxUnchecked = v }},
	{"checkboxChecked", func(s *Settings, v string) { s.CheckboxChecked = v }},
	{"mermaidConversionType", func(s *Settings, v string) { s.MermaidConversionType = MermaidConversion(v) }},
	{"mermaidReplacementText", func(s *Settings, v string) { s.MermaidReplacementText = v }},
}

// SettingKeys returns the recognized settings keys in declaration order.
func SettingKeys() []string {
	keys := make([]string, len(settingFields))
	for i, f := range settingFields {
		keys[i] = f.key
	}
	return keys
}

// ParseSettings decodes a YAML (or JSON) settings document and migrates it.
// An empty document yields DefaultSettings.
func ParseSettings(data []byte) (Settings, error) {
	if len(data) == 0 {
		return DefaultSettings(), nil
	}

	raw, err := yamlutil.UnmarshalMap(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}
	return MigrateSettings(raw), nil
}

// LoadSettings reads and parses a settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided settings path
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings %q: %w", path, err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// EncodeSettings renders s as a YAML document using the data.json keys.
func EncodeSettings(s Settings) ([]byte, error) {
	return yamlutil.Marshal(s)
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2note/internal/fileutil"
	"github.com/alnah/go-md2note/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxURLLength        = 2048 // Browser limit
	MaxStyleLength      = 64   // Style name, no extension
	MaxSettingLength    = 500  // Conversion values (mermaid replacement text)
	MaxAttachmentDirs   = 16
	DefaultEditorURL    = "https://note.com/notes/new"
	defaultConfigSubdir = "go-md2note"
)

// Config holds the CLI configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Export  ExportConfig  `yaml:"export"`
	Preview PreviewConfig `yaml:"preview"`
	Assets  AssetsConfig  `yaml:"assets"`

	// Conversion holds converter settings with their persisted key names
	// (h1Conversion, mermaidConversion, ...). It is kept raw so legacy
	// keys can be migrated by the settings loader.
	Conversion map[string]any `yaml:"conversion"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ExportConfig defines what happens to the converted text after conversion.
type ExportConfig struct {
	Sanitize   bool   `yaml:"sanitize"`   // Sanitize written files, not only copies
	Copy       bool   `yaml:"copy"`       // Copy the sanitized result to the clipboard
	OpenEditor bool   `yaml:"openEditor"` // Open the note.com editor after copying
	EditorURL  string `yaml:"editorURL"`  // Default: DefaultEditorURL
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Style          string   `yaml:"style"`          // Embedded or custom style name (default: "note")
	AttachmentDirs []string `yaml:"attachmentDirs"` // Image lookup dirs, relative to the note
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded styles
}

// Validate checks field lengths and formats.
// Called by LoadConfig; conversion values are checked for length only,
// their meaning is resolved by the settings loader.
func (c *Config) Validate() error {
	pathFields := []struct{ name, value string }{
		{"input.defaultDir", c.Input.DefaultDir},
		{"output.defaultDir", c.Output.DefaultDir},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, f := range pathFields {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("export.editorURL", c.Export.EditorURL, MaxURLLength); err != nil {
		return err
	}
	if c.Export.EditorURL != "" {
		u, err := url.Parse(c.Export.EditorURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: export.editorURL must be an http(s) URL, got %q", ErrInvalidField, c.Export.EditorURL)
		}
	}

	if err := validateFieldLength("preview.style", c.Preview.Style, MaxStyleLength); err != nil {
		return err
	}
	if len(c.Preview.AttachmentDirs) > MaxAttachmentDirs {
		return fmt.Errorf("%w: preview.attachmentDirs has %d entries (max %d)",
			ErrInvalidField, len(c.Preview.AttachmentDirs), MaxAttachmentDirs)
	}
	for i, dir := range c.Preview.AttachmentDirs {
		if err := validateFieldLength(fmt.Sprintf("preview.attachmentDirs[%d]", i), dir, MaxPathLength); err != nil {
			return err
		}
	}

	for key, value := range c.Conversion {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if err := validateFieldLength("conversion."+key, s, MaxSettingLength); err != nil {
			return err
		}
	}

	return nil
}

// EffectiveEditorURL returns the configured editor URL or the default.
func (c *Config) EffectiveEditorURL() string {
	if c.Export.EditorURL != "" {
		return c.Export.EditorURL
	}
	return DefaultEditorURL
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with every optional step disabled.
func DefaultConfig() *Config {
	return &Config{
		Export:  ExportConfig{EditorURL: DefaultEditorURL},
		Preview: PreviewConfig{Style: "note"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// <name>.yaml and <name>.yml in the current directory, then in the user
// config directory (~/.config/go-md2note on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, defaultConfigSubdir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// Package yamlutil wraps goccy/go-yaml for settings and config files.
// Decoding is size-limited and accepts JSON documents as well, since a
// JSON object is valid YAML (Obsidian stores plugin settings in data.json).
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

var utf8BOM = []byte("\xef\xbb\xbf")

func validateInput(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(bytes.TrimPrefix(data, utf8BOM), v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalMap decodes a top-level mapping into a generic map.
// An empty document yields an empty, non-nil map.
func UnmarshalMap(data []byte) (map[string]any, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &m); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// Marshal encodes v as YAML. Multi-line strings use the literal block style.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

package md2note

import (
	"errors"

	"github.com/alnah/go-md2note/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Settings errors.
	ErrSettingsParse  = errors.New("settings parsing failed")
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrPreviewRender is returned when the preview page cannot be built.
	ErrPreviewRender = pipeline.ErrPreviewRender

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

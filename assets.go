package md2note

import (
	"errors"

	"github.com/alnah/go-md2note/internal/assets"
)

// DefaultStyle is the built-in preview stylesheet, modeled on note.com.
const DefaultStyle = assets.DefaultStyle

// Styles returns the names of the built-in preview stylesheets.
func Styles() []string {
	return assets.NewEmbeddedLoader().Names()
}

// loadStyle resolves a stylesheet by name, looking in basePath/styles first
// when basePath is set. An empty name loads DefaultStyle.
func loadStyle(basePath, name string) (string, error) {
	if name == "" {
		name = DefaultStyle
	}

	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return "", convertAssetError(err)
	}

	css, err := resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return css, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // invalid name means not found
	default:
		return err
	}
}

// wrapError keeps the original message and matches the public sentinel
// with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel; internal errors are not exposed.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

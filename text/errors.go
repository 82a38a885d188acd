package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")
)

// ResourceError is returned when a font file cannot be read or parsed.
type ResourceError struct {
	// Path is the font file, or empty for in-memory data.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("text: font resource: %v", e.Err)
	}
	return fmt.Sprintf("text: font resource %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

package citador

import "errors"

var (
	// ErrMissingFont is returned by New when a font was not configured.
	ErrMissingFont = errors.New("citador: missing font")

	// ErrInvalidQuote is returned by RenderQuote for a quote without text.
	ErrInvalidQuote = errors.New("citador: invalid quote")
)

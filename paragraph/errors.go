package paragraph

import "errors"

// ErrInvalidInput is returned by Render when the text or style cannot be
// rendered. Errors carry the offending field and wrap this value.
var ErrInvalidInput = errors.New("paragraph: invalid input")

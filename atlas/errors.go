package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the atlas package.
var (
	// ErrNameTooLong is returned by Encode when an entry name does not fit
	// the one-byte length prefix.
	ErrNameTooLong = errors.New("atlas: entry name longer than 255 bytes")

	// ErrEmptyName is returned by Encode for an entry without a name.
	ErrEmptyName = errors.New("atlas: empty entry name")
)

// FormatError reports an atlas container that cannot be inflated, is
// truncated mid-record, or holds a payload that is not a decodable image.
type FormatError struct {
	// Offset is the byte offset in the inflated stream, or -1 when the
	// compressed stream itself is bad.
	Offset int64

	// Key is the entry being decoded, if known.
	Key string

	// Reason is a short description of the problem.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (e *FormatError) Error() string {
	msg := "atlas: " + e.Reason
	if e.Key != "" {
		msg += fmt.Sprintf(" (entry %q)", e.Key)
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

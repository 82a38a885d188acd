package atlas

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// nameLenSize is the width of the name length prefix in bytes.
	nameLenSize = 1

	// payloadLenSize is the width of the payload size field in bytes.
	payloadLenSize = 10

	// maxNameLen is the longest name the length prefix can describe.
	maxNameLen = 1<<(8*nameLenSize) - 1
)

// Entry is one named payload of an atlas container.
type Entry struct {
	// Key is the code-point key, e.g. "1f44b-1f3fd".
	Key string

	// Data is the raw encoded image.
	Data []byte
}

// Encode writes entries as an atlas container to w, in order, compressed at
// zlib.BestCompression.
func Encode(w io.Writer, entries []Entry) error {
	zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
	if err != nil {
		return fmt.Errorf("atlas: create compressor: %w", err)
	}

	var size [payloadLenSize]byte
	for _, e := range entries {
		if e.Key == "" {
			return ErrEmptyName
		}
		if len(e.Key) > maxNameLen {
			return fmt.Errorf("%w: %q", ErrNameTooLong, e.Key)
		}

		// The upper two bytes of the size field stay zero: a Go slice length
		// always fits in the low eight.
		binary.BigEndian.PutUint64(size[payloadLenSize-8:], uint64(len(e.Data)))

		if _, err := zw.Write([]byte{byte(len(e.Key))}); err != nil {
			return fmt.Errorf("atlas: write %q: %w", e.Key, err)
		}
		if _, err := io.WriteString(zw, e.Key); err != nil {
			return fmt.Errorf("atlas: write %q: %w", e.Key, err)
		}
		if _, err := zw.Write(size[:]); err != nil {
			return fmt.Errorf("atlas: write %q: %w", e.Key, err)
		}
		if _, err := zw.Write(e.Data); err != nil {
			return fmt.Errorf("atlas: write %q: %w", e.Key, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("atlas: flush compressor: %w", err)
	}
	return nil
}

// Decode inflates an atlas container and returns its entries in stream order.
// Any inflate failure or truncated record is reported as a *FormatError.
func Decode(r io.Reader) ([]Entry, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, &FormatError{Offset: -1, Reason: "cannot inflate container", Err: err}
	}
	defer func() { _ = zr.Close() }()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, &FormatError{Offset: -1, Reason: "cannot inflate container", Err: err}
	}

	return parseRecords(raw)
}

// parseRecords splits an inflated container into entries.
func parseRecords(raw []byte) ([]Entry, error) {
	var entries []Entry
	buf := bytes.NewReader(raw)

	for buf.Len() > 0 {
		offset := int64(len(raw) - buf.Len())

		nameLen, _ := buf.ReadByte()
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(buf, name); err != nil {
			return nil, &FormatError{Offset: offset, Reason: "truncated entry name", Err: err}
		}
		if !utf8.Valid(name) {
			return nil, &FormatError{Offset: offset, Reason: "entry name is not valid UTF-8"}
		}
		key := string(name)

		var size [payloadLenSize]byte
		if _, err := io.ReadFull(buf, size[:]); err != nil {
			return nil, &FormatError{Offset: offset, Key: key, Reason: "truncated payload size", Err: err}
		}
		if size[0] != 0 || size[1] != 0 {
			return nil, &FormatError{Offset: offset, Key: key, Reason: "payload size out of range"}
		}
		n := binary.BigEndian.Uint64(size[payloadLenSize-8:])
		if n > uint64(buf.Len()) {
			return nil, &FormatError{
				Offset: offset,
				Key:    key,
				Reason: fmt.Sprintf("truncated payload: want %d bytes, have %d", n, buf.Len()),
			}
		}

		data := make([]byte, n)
		_, _ = io.ReadFull(buf, data)
		entries = append(entries, Entry{Key: key, Data: data})
	}

	return entries, nil
}

package text

import (
	"errors"
	"os"
	"path/filepath"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr points to the FontSource itself and detects copies.
	addr *FontSource

	parsed ParsedFont
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// Parse failures are reported as *ResourceError.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := parseSFNT(data)
	if err != nil {
		return nil, &ResourceError{Err: err}
	}

	s := &FontSource{parsed: parsed}
	s.addr = s
	s.name = parsed.Name()
	if s.name == "" {
		s.name = "Unknown Font"
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
// A missing, unreadable or unparsable file is reported as *ResourceError.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}

	s, err := NewFontSource(data)
	if err != nil {
		var re *ResourceError
		if errors.As(err, &re) {
			re.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Face creates a Face at the specified size in pixels per em.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

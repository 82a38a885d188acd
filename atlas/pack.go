package atlas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PackDir collects every *.png file in dir as an entry keyed by its base name
// without extension. Entries are ordered by file name so that the encoded
// container is reproducible.
func PackDir(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("atlas: read directory: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if !f.Type().IsRegular() {
			continue
		}
		ext := filepath.Ext(f.Name())
		if !strings.EqualFold(ext, ".png") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("atlas: read %s: %w", f.Name(), err)
		}
		entries = append(entries, Entry{
			Key:  strings.TrimSuffix(f.Name(), ext),
			Data: data,
		})
	}
	return entries, nil
}

// WriteFile encodes entries into a new container file at path.
func WriteFile(path string, entries []Entry) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("atlas: create container: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("atlas: close container: %w", cerr)
		}
	}()

	return Encode(f, entries)
}

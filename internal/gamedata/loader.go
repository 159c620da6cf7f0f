package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load reads and unmarshals an embedded JSON content file.
func Load[T any](filename string) (T, error) {
	return loadFrom[T](dataFS, filename)
}

// loadFrom decodes a JSON file from fsys. Unknown fields are an error.
func loadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read content file %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// must returns v, panicking if err is set. Used for content compiled into the binary.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

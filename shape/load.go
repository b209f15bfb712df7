// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// load.go — Load: open a shape file and dispatch on its extension.

package shape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the shape at path. Extensions .yaml/.yml, .toml and .obj are
// recognized; the file base name is used when the document has no name.
func Load(path string) (Shape, error) {
	const method = "Load"
	ext := strings.ToLower(filepath.Ext(path))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var decode func(f *os.File) (Shape, error)
	switch ext {
	case ".yaml", ".yml":
		decode = func(f *os.File) (Shape, error) { return LoadYAML(f) }
	case ".toml":
		decode = func(f *os.File) (Shape, error) { return LoadTOML(f) }
	case ".obj":
		decode = func(f *os.File) (Shape, error) { return ParseOBJ(f, base) }
	default:
		return Shape{}, fmt.Errorf("%s(%q): %w", method, path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", method, err)
	}
	defer f.Close()

	s, err := decode(f)
	if err != nil {
		return Shape{}, fmt.Errorf("%s(%q): %w", method, path, err)
	}
	if s.Name == "" {
		s.Name = base
	}
	return s, nil
}

// SPDX-License-Identifier: MIT
// Package: subdiv/config
//
// config.go — Config, defaults, loading and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subdiv/logging"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

var (
	// ErrUnknownScheme indicates a scheme name refine does not know.
	ErrUnknownScheme = errors.New("config: unknown scheme")

	// ErrUnknownMode indicates a refinement mode other than uniform/adaptive.
	ErrUnknownMode = errors.New("config: unknown mode")

	// ErrUnknownBoundary indicates an unrecognized boundary policy.
	ErrUnknownBoundary = errors.New("config: unknown boundary mode")

	// ErrUnsupportedFormat indicates a file extension Load cannot decode.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalid indicates an out-of-range numeric setting.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds one refinement run's settings.
type Config struct {
	Scheme   string    `yaml:"scheme" toml:"scheme"`
	Mode     string    `yaml:"mode" toml:"mode"`
	Depth    int       `yaml:"depth" toml:"depth"`
	Boundary string    `yaml:"boundary" toml:"boundary"`
	Workers  int       `yaml:"workers" toml:"workers"`
	Log      LogConfig `yaml:"log" toml:"log"`
}

// LogConfig selects the log level and optional rotating file.
type LogConfig struct {
	Level string             `yaml:"level" toml:"level"`
	File  logging.FileConfig `yaml:"file" toml:"file"`
}

// Default returns uniform Catmull–Clark to depth 2 with an edge-only
// boundary, GOMAXPROCS workers and info logging to the console only.
func Default() *Config {
	return &Config{
		Scheme:   "catmark",
		Mode:     "uniform",
		Depth:    2,
		Boundary: "edgeonly",
		Workers:  runtime.GOMAXPROCS(0),
		Log:      LogConfig{Level: "info"},
	}
}

// Load decodes the file at path over Default() and validates the result.
// The format follows the extension: .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	const method = "Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s(%q): %w", method, path, err)
		}
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
			return nil, fmt.Errorf("%s(%q): %w", method, path, err)
		}
	default:
		return nil, fmt.Errorf("%s(%q): %w", method, path, ErrUnsupportedFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s(%q): %w", method, path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields and numeric ranges.
func (c *Config) Validate() error {
	if _, err := c.Request(); err != nil {
		return err
	}
	if _, err := c.BoundaryMode(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Request converts scheme, mode and depth into a refine.Request.
func (c *Config) Request() (refine.Request, error) {
	scheme, err := refine.ParseScheme(c.Scheme)
	if err != nil {
		return refine.Request{}, fmt.Errorf("scheme %q: %w", c.Scheme, ErrUnknownScheme)
	}
	mode, err := refine.ParseMode(c.Mode)
	if err != nil {
		return refine.Request{}, fmt.Errorf("mode %q: %w", c.Mode, ErrUnknownMode)
	}
	if c.Depth < 0 {
		return refine.Request{}, fmt.Errorf("depth %d: %w", c.Depth, ErrInvalid)
	}
	return refine.Request{Scheme: scheme, Mode: mode, Depth: c.Depth}, nil
}

// BoundaryMode converts the boundary name.
func (c *Config) BoundaryMode() (topology.BoundaryMode, error) {
	m, err := topology.ParseBoundaryMode(c.Boundary)
	if err != nil {
		return topology.BoundaryNone, fmt.Errorf("boundary %q: %w", c.Boundary, ErrUnknownBoundary)
	}
	return m, nil
}

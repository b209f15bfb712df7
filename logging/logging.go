// SPDX-License-Identifier: MIT
// Package: subdiv/logging
//
// logging.go — New: console plus rotating-file zap logger.

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrUnknownLevel indicates a level name zap does not recognize.
var ErrUnknownLevel = errors.New("logging: unknown level")

// FileConfig configures the optional rotating log file. An empty Path
// disables file output.
type FileConfig struct {
	Path       string `yaml:"path" toml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// DefaultFileConfig returns rotation defaults for path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Option customizes New.
type Option func(*options)

type options struct {
	console io.Writer
}

// WithConsole redirects the console core to w; nil disables it.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.console = w
	}
}

// ParseLevel maps "debug", "info", "warn", "error" (any case, "" = info)
// to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("ParseLevel(%q): %w", level, ErrUnknownLevel)
	}
	return lvl, nil
}

// New builds a logger at level with a console core and, when file.Path is
// set, a lumberjack-rotated file core. With neither output it returns a
// no-op logger.
//
// The returned cleanup flushes the logger and closes the log file. Call it
// once logging is done; a later write reopens the file.
func New(level string, file FileConfig, opts ...Option) (*zap.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("New: %w", err)
	}
	o := options{console: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		cores []zapcore.Core
		rot   *lumberjack.Logger
	)
	if o.console != nil {
		enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			NameKey:          "logger",
			MessageKey:       "msg",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05.000"),
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeDuration:   zapcore.StringDurationEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(o.console), lvl))
	}
	if file.Path != "" {
		rot = &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Compress:   file.Compress,
			LocalTime:  true,
		}
		enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.NanosDurationEncoder,
		})
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rot), lvl))
	}
	if len(cores) == 0 {
		return zap.NewNop(), func() error { return nil }, nil
	}

	log := zap.New(zapcore.NewTee(cores...))
	cleanup := func() error {
		err := log.Sync()
		if rot != nil {
			err = errors.Join(err, rot.Close())
		}
		return err
	}
	return log, cleanup, nil
}

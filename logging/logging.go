// SPDX-License-Identifier: MIT

// Package logging builds the structured zap logger shared by a run.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the log file written next to the working directory.
const DefaultPath = "cluster.log"

// Options configure New.
type Options struct {
	// Verbose lowers the level from info to debug.
	Verbose bool

	// Path is the log file, appended to; empty logs to stderr only.
	Path string

	// Development switches to the human-readable console encoder.
	Development bool
}

// New builds a logger writing to opts.Path and stderr.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
	}

	cfg.Level = zap.NewAtomicLevelAt(Level(opts.Verbose))
	cfg.OutputPaths = []string{"stderr"}
	if opts.Path != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, opts.Path)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}

	return logger, nil
}

// Level maps the verbose flag to a zap level.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zap.DebugLevel
	}

	return zap.InfoLevel
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}

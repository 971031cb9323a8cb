// Package logging builds the zap logger shared by the commands and the terminal UI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// File receives the log output. Empty means stderr, unless Quiet is set.
	File  string
	Debug bool
	// Quiet discards output when no file is configured. The TUI owns the terminal.
	Quiet bool
}

func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" && cfg.Quiet {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if cfg.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Package logging builds the zap logger shared by the GUI and the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at the given level ("debug", "info", "warn",
// "error"). An empty level means info.
func New(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return cfg.Build()
}

// MustNew is New that falls back to a no-op logger on a bad level
func MustNew(level string) *zap.Logger {
	logger, err := New(level)
	if err != nil {
		fallback, _ := New("")
		if fallback == nil {
			return zap.NewNop()
		}
		fallback.Warn("falling back to info level", zap.Error(err))
		return fallback
	}
	return logger
}

// Package logging builds the zap logger shared by the kotus commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cours-de-latin/kotus/internal/config"
)

// New builds a logger from the log section of the configuration.
// verbose forces debug level.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

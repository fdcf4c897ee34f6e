package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/longkey1/chatc/internal/chatc/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setupLogger replaces the package logger with one built from cfg.
// fullScreen silences stderr output so it cannot corrupt the TUI.
func setupLogger(cfg *config.Config, fullScreen bool) error {
	l, err := newLogger(cfg, fullScreen)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func newLogger(cfg *config.Config, fullScreen bool) (*zap.Logger, error) {
	if fullScreen && cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	if cfg.LogFile == "" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return zc.Build()
}

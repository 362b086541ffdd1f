// Package log holds the process-wide zap logger.
//
// The terminal belongs to the UI, so logs only go to a file. Until Set is
// called every component logs into a no-op logger.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set builds the logger writing to path. An empty path keeps the no-op
// logger.
func Set(path string, verbose bool) error {
	if path == "" {
		defaultLogger = zap.NewNop()
		return nil
	}

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      verbose,
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

func Flush() error {
	return defaultLogger.Sync()
}

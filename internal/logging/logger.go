package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Environment variables controlling log verbosity and destination.
// When LogLevelEnvVar is unset or empty, logging is silent.
const (
	LogLevelEnvVar = "WEFT_LOG_LEVEL"
	LogFileEnvVar  = "WEFT_LOG_FILE"

	defaultLogFile = "weft.log"
)

// Initialize creates the global logger at the given level. If level is
// empty, the WEFT_LOG_LEVEL environment variable is consulted; if that
// is also empty, logging is disabled (no-op logger).
//
// Output always goes to a file: a TUI owns stdout and stderr while it
// is running, so console sinks would corrupt the display.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level but logging was requested: default to info.
		zapLevel = zapcore.InfoLevel
	}

	file := os.Getenv(LogFileEnvVar)
	if file == "" {
		file = defaultLogFile
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{file},
		ErrorOutputPaths: []string{file},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// InitializeFromEnv initializes the logger purely from the environment.
// This is the recommended entry point for CLI commands that want silent
// mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance.
func GetLogger() *zap.Logger {
	if logger == nil {
		// Not initialized: stay silent rather than surprise a running TUI.
		logger = zap.NewNop()
	}
	return logger
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = GetLogger().Sync()
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

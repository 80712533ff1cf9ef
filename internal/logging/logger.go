package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CONTACTFORM_LOG_LEVEL"

// Initialize creates the global logger with the specified level, writing to
// outputPath ("" means stdout).
// If level is empty, it checks the CONTACTFORM_LOG_LEVEL environment variable.
// If neither is set, logging is disabled.
func Initialize(level string, outputPath string) error {
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
		zapLevel = zapcore.InfoLevel
	}

	if outputPath == "" {
		outputPath = "stdout"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if outputPath == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger and returns a function that restores
// the previous one. Intended for tests.
func SetLogger(l *zap.Logger) (restore func()) {
	prev := logger
	logger = l
	return func() { logger = prev }
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSubmission logs a submission lifecycle event
func LogSubmission(submissionID string, event string) {
	Info("Submission event",
		zap.String("submission_id", submissionID),
		zap.String("event", event),
	)
}

// LogTransportReply logs a reply the backend accepted
func LogTransportReply(submissionID string, statusCode int, message string) {
	Info("Transport reply",
		zap.String("submission_id", submissionID),
		zap.Int("status_code", statusCode),
		zap.String("message", message),
	)
}

// LogTransportRejected logs a reply the backend answered but did not accept
func LogTransportRejected(submissionID string, statusCode int, err error) {
	Warn("Transport rejected",
		zap.String("submission_id", submissionID),
		zap.Int("status_code", statusCode),
		zap.Error(err),
	)
}

// LogTransportError logs a failed transport call
func LogTransportError(submissionID string, err error) {
	Error("Transport error",
		zap.String("submission_id", submissionID),
		zap.Error(err),
	)
}

// LogHTTPRequest logs an outgoing HTTP request
func LogHTTPRequest(method string, url string, bodySize int) {
	Debug("HTTP request sent",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("body_size", bodySize),
	)
}

// Enabled reports whether any log output is produced
func Enabled() bool {
	return GetLogger().Core().Enabled(zapcore.FatalLevel)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

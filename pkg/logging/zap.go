package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements Logger interface using zap
type ZapLogger struct {
	logger    *zap.Logger
	component string
	context   map[string]interface{}
}

// NewZapLogger creates a new ZapLogger writing through the given zap logger
func NewZapLogger(logger *zap.Logger, component string) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{
		logger:    logger,
		component: component,
		context:   make(map[string]interface{}),
	}
}

// NewDualSinkLogger builds the process logger: one core appends to the log
// file, one writes to stderr, both behind the winner filter. The returned
// func closes the log file.
func NewDualSinkLogger(cfg Config) (*zap.Logger, func(), error) {
	fileLevel, err := ParseLevel(cfg.FileLevel)
	if err != nil {
		return nil, nil, err
	}
	consoleLevel, err := ParseLevel(cfg.ConsoleLevel)
	if err != nil {
		return nil, nil, err
	}

	fileSink, closeFile, err := zap.Open(cfg.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}

	encoder := newEncoder(cfg.Format)
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, fileSink, fileLevel),
		zapcore.NewCore(encoder.Clone(), zapcore.Lock(os.Stderr), consoleLevel),
	)

	return zap.New(NewWinnerFilter(core)), closeFile, nil
}

// ParseLevel maps a config level name onto a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
}

// newEncoder returns the shared "time | LEVEL | message" line format
func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " | ",
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// Info logs an info message
func (z *ZapLogger) Info(msg string, fields map[string]interface{}) {
	zapFields := z.buildZapFields(fields)
	z.logger.Info(fmt.Sprintf("[%s] %s", z.component, msg), zapFields...)
}

// Error logs an error message
func (z *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	zapFields := z.buildZapFields(fields)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	z.logger.Error(fmt.Sprintf("[%s] %s", z.component, msg), zapFields...)
}

// Warn logs a warning message
func (z *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	zapFields := z.buildZapFields(fields)
	z.logger.Warn(fmt.Sprintf("[%s] %s", z.component, msg), zapFields...)
}

// Debug logs a debug message
func (z *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	zapFields := z.buildZapFields(fields)
	z.logger.Debug(fmt.Sprintf("[%s] %s", z.component, msg), zapFields...)
}

// WithOperation creates a new logger with operation context
func (z *ZapLogger) WithOperation(operation string) Logger {
	return z.WithContext(map[string]interface{}{
		"operation": operation,
	})
}

// WithContext creates a new logger with additional context
func (z *ZapLogger) WithContext(ctx map[string]interface{}) Logger {
	newContext := make(map[string]interface{})
	for k, v := range z.context {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &ZapLogger{
		logger:    z.logger,
		component: z.component,
		context:   newContext,
	}
}

// buildZapFields converts map fields to zap fields
func (z *ZapLogger) buildZapFields(fields map[string]interface{}) []zap.Field {
	var zapFields []zap.Field

	// Add context fields first
	for k, v := range z.context {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

package logging

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultLoggerFactory implements LoggerFactory on top of one shared zap logger
type DefaultLoggerFactory struct {
	root    *zap.Logger
	loggers map[string]Logger
	mu      sync.RWMutex
}

// NewLoggerFactory creates a new logger factory writing through root
func NewLoggerFactory(root *zap.Logger) LoggerFactory {
	if root == nil {
		root = zap.NewNop()
	}

	return &DefaultLoggerFactory{
		root:    root,
		loggers: make(map[string]Logger),
	}
}

// CreateLogger creates a basic logger for the specified component
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Check if logger already exists
	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	logger := NewZapLogger(f.root, component)
	f.loggers[component] = logger
	return logger
}

// CreateCommandLogger creates a logger for one CLI command invocation
func (f *DefaultLoggerFactory) CreateCommandLogger(commandName string) Logger {
	baseLogger := f.CreateLogger("cli")
	return NewCommandLogger(baseLogger, commandName)
}

// Sync flushes buffered entries of the shared logger
func (f *DefaultLoggerFactory) Sync() error {
	return f.root.Sync()
}

// NewNopLogger returns a Logger that discards everything
func NewNopLogger() Logger {
	return NewZapLogger(zap.NewNop(), "nop")
}

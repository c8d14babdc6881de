package logging

import (
	"fmt"
)

// CommandLogger wraps a base logger with the name of the CLI command being run
type CommandLogger struct {
	base    Logger
	command string
	context map[string]interface{}
}

// NewCommandLogger creates a new command-specific logger
func NewCommandLogger(base Logger, command string) *CommandLogger {
	return &CommandLogger{
		base:    base,
		command: command,
		context: make(map[string]interface{}),
	}
}

// Info logs informational messages with command context
func (c *CommandLogger) Info(msg string, fields map[string]interface{}) {
	c.base.Info(fmt.Sprintf("[%s] %s", c.command, msg), c.enrichFields(fields))
}

// Error logs error messages with command context
func (c *CommandLogger) Error(msg string, err error, fields map[string]interface{}) {
	c.base.Error(fmt.Sprintf("[%s] %s", c.command, msg), err, c.enrichFields(fields))
}

// Warn logs warning messages with command context
func (c *CommandLogger) Warn(msg string, fields map[string]interface{}) {
	c.base.Warn(fmt.Sprintf("[%s] %s", c.command, msg), c.enrichFields(fields))
}

// Debug logs debug messages with command context
func (c *CommandLogger) Debug(msg string, fields map[string]interface{}) {
	c.base.Debug(fmt.Sprintf("[%s] %s", c.command, msg), c.enrichFields(fields))
}

// WithOperation keeps the command prefix and tags entries with the operation
func (c *CommandLogger) WithOperation(operation string) Logger {
	return c.WithContext(map[string]interface{}{
		"operation": operation,
	})
}

// WithContext creates a new logger with additional context fields
func (c *CommandLogger) WithContext(ctx map[string]interface{}) Logger {
	newContext := c.copyContext()
	for k, v := range ctx {
		newContext[k] = v
	}

	return &CommandLogger{
		base:    c.base,
		command: c.command,
		context: newContext,
	}
}

// enrichFields combines command context with provided fields
func (c *CommandLogger) enrichFields(fields map[string]interface{}) map[string]interface{} {
	enriched := c.copyContext()

	// Provided fields can override context
	for k, v := range fields {
		enriched[k] = v
	}

	enriched["command"] = c.command

	return enriched
}

func (c *CommandLogger) copyContext() map[string]interface{} {
	newContext := make(map[string]interface{}, len(c.context))
	for k, v := range c.context {
		newContext[k] = v
	}
	return newContext
}

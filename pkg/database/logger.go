package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/latoulicious/roster/pkg/logging"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's own logging into a logging.Logger. Everything is
// emitted at debug level: failures that matter are reported by the caller.
type GormLogger struct {
	logger logging.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger that traces every statement
func NewGormLogger(logger logging.Logger) *GormLogger {
	return &GormLogger{
		logger: logger,
		level:  gormlogger.Info,
	}
}

// LogMode returns a copy of the logger at the given GORM level
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copied := *g
	copied.level = level
	return &copied
}

func (g *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.Debug(fmt.Sprintf(msg, args...), nil)
	}
}

func (g *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.Debug(fmt.Sprintf(msg, args...), nil)
	}
}

func (g *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.Debug(fmt.Sprintf(msg, args...), nil)
	}
}

// Trace logs one executed statement with its row count and duration
func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":     sql,
		"rows":    rows,
		"elapsed": time.Since(begin).String(),
	}

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error {
		fields["error"] = err.Error()
		g.logger.Debug("query failed", fields)
		return
	}

	if g.level >= gormlogger.Info {
		g.logger.Debug("query", fields)
	}
}

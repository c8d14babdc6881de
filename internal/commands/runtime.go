package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/latoulicious/roster/internal/config"
	"github.com/latoulicious/roster/pkg/database"
	"github.com/latoulicious/roster/pkg/logging"
	"github.com/latoulicious/roster/pkg/roster"
	"gorm.io/gorm"
)

// Runtime is what one command invocation works with
type Runtime struct {
	DB     *gorm.DB
	Store  *roster.Store
	Logger logging.Logger

	closers []func()
}

// Close releases the connection and flushes the log sinks
func (r *Runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// RuntimeFactory opens a Runtime for the named command
type RuntimeFactory func(ctx context.Context, command string) (*Runtime, error)

// OpenRuntime loads configuration, builds the dual-sink logger and connects
// to DATABASE_URL.
func OpenRuntime(ctx context.Context, command string) (*Runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	root, closeFile, err := logging.NewDualSinkLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	factory := logging.NewLoggerFactory(root)

	rt := &Runtime{}
	rt.closers = append(rt.closers, closeFile, func() { _ = factory.Sync() })

	rt.Logger = factory.CreateCommandLogger(command).WithContext(map[string]interface{}{
		"run_id": uuid.NewString(),
		"env":    cfg.Environment,
	})

	db, err := database.NewGormDB(cfg.DatabaseURL, factory.CreateLogger("gorm"))
	if err != nil {
		rt.Logger.Error("Failed to connect to database", err, nil)
		rt.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	rt.closers = append(rt.closers, func() { _ = database.Close(db) })

	rt.DB = db
	rt.Store = roster.NewStore(db, rt.Logger)
	return rt, nil
}

package roster

import (
	"context"
	"fmt"

	"github.com/latoulicious/roster/pkg/database/migration"
)

// CreateSchema drops every roster table and creates them again, empty.
func (s *Store) CreateSchema(ctx context.Context) error {
	logger := s.logger.WithOperation("create_schema")

	if err := migration.Recreate(s.db.WithContext(ctx)); err != nil {
		logger.Error("Failed to create the DB", err, nil)
		return fmt.Errorf("create schema: %w", err)
	}

	logger.Info("A new DB has been created", nil)
	return nil
}

package roster

import (
	"context"

	"github.com/latoulicious/roster/pkg/logging"
	"gorm.io/gorm"
)

// Store is the data-access layer over the hero, slogan, clash and story tables.
// Every operation runs in its own transaction.
type Store struct {
	db     *gorm.DB
	logger logging.Logger
	random Random
}

// Option configures a Store
type Option func(*Store)

// WithRandom replaces the random source used by AddClash
func WithRandom(r Random) Option {
	return func(s *Store) {
		s.random = r
	}
}

// NewStore creates a Store on top of an open GORM connection
func NewStore(db *gorm.DB, logger logging.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	s := &Store{
		db:     db,
		logger: logger,
		random: globalRandom{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

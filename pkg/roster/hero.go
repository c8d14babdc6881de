package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/latoulicious/roster/pkg/database/models"
	"github.com/latoulicious/roster/pkg/database/repository"
	"gorm.io/gorm"
)

// BirthdayLayout is the day.month.year form accepted on the command line
const BirthdayLayout = "2.1.2006"

// ParseBirthday parses a day.month.year date such as 07.11.1879
func ParseBirthday(value string) (time.Time, error) {
	birthday, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match format 'day.month.year'", ErrFormat, value)
	}
	return birthday, nil
}

// AddHeroFromString parses birthday and adds the hero. Nothing is inserted
// when the date is malformed.
func (s *Store) AddHeroFromString(ctx context.Context, name, side, birthday string) error {
	parsed, err := ParseBirthday(birthday)
	if err != nil {
		s.logger.WithOperation("add_hero").Error("Birthday has a wrong format", err, map[string]interface{}{
			"birthday": birthday,
		})
		return err
	}
	return s.AddHero(ctx, name, side, parsed)
}

// AddHero inserts a hero. A taken name is reported as a warning and is not an error.
func (s *Store) AddHero(ctx context.Context, name, side string, birthday time.Time) error {
	logger := s.logger.WithOperation("add_hero")
	fields := map[string]interface{}{
		"name":     name,
		"side":     side,
		"birthday": birthday,
	}
	logger.Debug("add_hero()", fields)

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return repository.NewHeroRepository(tx).CreateHero(&models.Hero{
			Name:     name,
			Side:     side,
			Birthday: birthday,
		})
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Warn(fmt.Sprintf("%s: hero name already exists", ErrUniqueViolation), map[string]interface{}{
			"name": name,
		})
		return nil
	}
	if err != nil {
		logger.Error("Failed to add hero", err, fields)
		return fmt.Errorf("add hero %q: %w", name, err)
	}

	logger.Info("Hero has been added", fields)
	return nil
}

// DeleteHero removes every hero with the given name. Slogans and stories go
// with it; clashes keep their rows with the references nulled.
func (s *Store) DeleteHero(ctx context.Context, name string) error {
	logger := s.logger.WithOperation("delete_hero")
	logger.Debug("delete_hero()", map[string]interface{}{"name": name})

	var deleted int64
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		var err error
		deleted, err = repository.NewHeroRepository(tx).DeleteHeroesByName(name)
		return err
	})
	if err != nil {
		logger.Error("Failed to delete hero", err, map[string]interface{}{"name": name})
		return fmt.Errorf("delete hero %q: %w", name, err)
	}

	logger.Info("Hero has been deleted", map[string]interface{}{
		"name":    name,
		"deleted": deleted,
	})
	return nil
}

// findHero looks a hero up by its unique name. It returns ErrNotFound or
// ErrAmbiguous when the lookup does not yield exactly one row.
func findHero(tx *gorm.DB, name string) (*models.Hero, error) {
	heroes, err := repository.NewHeroRepository(tx).FindHeroesByName(name, 2)
	if err != nil {
		return nil, err
	}

	switch len(heroes) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case 1:
		return &heroes[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguous, name)
	}
}

package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/latoulicious/roster/pkg/database/models"
	"github.com/latoulicious/roster/pkg/database/repository"
	"gorm.io/gorm"
)

// AddSlogan attributes a new slogan to the hero. Its moto index is one past
// the hero's current highest index, starting at 1.
func (s *Store) AddSlogan(ctx context.Context, heroName, text string) error {
	logger := s.logger.WithOperation("add_slogan")
	fields := map[string]interface{}{
		"name": heroName,
		"moto": text,
	}
	logger.Debug("add_slogan()", fields)

	var slogan models.Slogan
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		hero, err := findHero(tx, heroName)
		if err != nil {
			return err
		}

		slogans := repository.NewSloganRepository(tx)
		last, err := slogans.GetLastMotoID(hero.ID)
		if err != nil {
			return err
		}

		slogan = models.Slogan{
			HeroID: hero.ID,
			MotoID: last + 1,
			Moto:   text,
		}
		return slogans.CreateSlogan(&slogan)
	})

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		logger.Warn(fmt.Sprintf("%s: slogan already exists", ErrUniqueViolation), map[string]interface{}{
			"moto": text,
		})
		return nil
	case errors.Is(err, ErrNotFound):
		logger.Error("There is no such hero", err, map[string]interface{}{"name": heroName})
		return err
	case errors.Is(err, ErrAmbiguous):
		logger.Error("Multiple heroes are returned", err, map[string]interface{}{
			"name":     heroName,
			"severity": "critical",
		})
		return err
	case err != nil:
		logger.Error("Failed to add slogan", err, fields)
		return fmt.Errorf("add slogan for %q: %w", heroName, err)
	}

	fields["moto_id"] = slogan.MotoID
	logger.Info("Slogan has been created", fields)
	return nil
}

package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/latoulicious/roster/pkg/database/models"
	"github.com/latoulicious/roster/pkg/database/repository"
	"gorm.io/gorm"
)

// AddStoryToHero attaches a story to the named hero. An unknown hero is
// skipped without error.
func (s *Store) AddStoryToHero(ctx context.Context, heroName, text string) error {
	logger := s.logger.WithOperation("add_story")
	fields := map[string]interface{}{
		"name":  heroName,
		"story": text,
	}
	logger.Debug("add_story_to_hero()", fields)

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		hero, err := findHero(tx, heroName)
		if err != nil {
			return err
		}
		return repository.NewStoryRepository(tx).CreateStory(&models.Story{
			HeroID: hero.ID,
			Text:   text,
		})
	})

	switch {
	case errors.Is(err, ErrNotFound):
		logger.Info("There is no such hero to add story", map[string]interface{}{"name": heroName})
		return nil
	case errors.Is(err, ErrAmbiguous):
		logger.Error("Multiple heroes are returned", err, map[string]interface{}{
			"name":     heroName,
			"severity": "critical",
		})
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		logger.Warn(fmt.Sprintf("%s: story already exists", ErrUniqueViolation), map[string]interface{}{
			"name": heroName,
		})
		return nil
	case err != nil:
		logger.Error("Failed to add story", err, fields)
		return fmt.Errorf("add story for %q: %w", heroName, err)
	}

	logger.Info("Story has been added", fields)
	return nil
}

package roster

import (
	"context"
	"errors"

	"github.com/latoulicious/roster/pkg/database/models"
	"github.com/latoulicious/roster/pkg/database/repository"
	"gorm.io/gorm"
)

// Heroes returns every hero ordered by id
func (s *Store) Heroes(ctx context.Context) ([]models.Hero, error) {
	return repository.NewHeroRepository(s.db.WithContext(ctx)).GetAllHeroes()
}

// Slogans returns the named hero's slogans ordered by moto index
func (s *Store) Slogans(ctx context.Context, heroName string) ([]models.Slogan, error) {
	var slogans []models.Slogan
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		hero, err := findHero(tx, heroName)
		if err != nil {
			return err
		}
		slogans, err = repository.NewSloganRepository(tx).GetSlogansByHeroID(hero.ID)
		return err
	})
	return slogans, err
}

// Clashes returns every clash ordered by id
func (s *Store) Clashes(ctx context.Context) ([]models.Clash, error) {
	return repository.NewClashRepository(s.db.WithContext(ctx)).GetAllClashes()
}

// Story returns the named hero's story, or nil when the hero has none or
// does not exist.
func (s *Store) Story(ctx context.Context, heroName string) (*models.Story, error) {
	var story *models.Story
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		hero, err := findHero(tx, heroName)
		if err != nil {
			return err
		}
		story, err = repository.NewStoryRepository(tx).GetStoryByHeroID(hero.ID)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return story, err
}

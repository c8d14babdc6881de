package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/latoulicious/roster/pkg/database/models"
	"github.com/latoulicious/roster/pkg/database/repository"
	"github.com/latoulicious/roster/pkg/logging"
	"gorm.io/gorm"
)

// AddClash picks two different sides, one hero of each and one slogan of
// each hero, draws a winner in {0,1,2} and stores the clash.
func (s *Store) AddClash(ctx context.Context) (*models.Clash, error) {
	logger := s.logger.WithOperation("add_clash")
	logger.Debug("add_clash()", nil)

	var clash *models.Clash
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		var err error
		clash, err = s.drawClash(tx)
		if err != nil {
			return err
		}
		return repository.NewClashRepository(tx).CreateClash(clash)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			logger.Error("There is not enough data in the DB to make a clash", err, nil)
			return nil, err
		}
		logger.Error("Failed to add clash", err, nil)
		return nil, fmt.Errorf("add clash: %w", err)
	}

	logger.Info("Clash has been created", map[string]interface{}{
		"hero_1_id":         *clash.Hero1ID,
		"hero_2_id":         *clash.Hero2ID,
		logging.WinnerField: clash.Winner,
	})
	return clash, nil
}

func (s *Store) drawClash(tx *gorm.DB) (*models.Clash, error) {
	heroes := repository.NewHeroRepository(tx)

	sides, err := heroes.GetSides()
	if err != nil {
		return nil, err
	}
	if len(sides) < 2 {
		return nil, fmt.Errorf("%w: need two opposing sides, have %v", ErrInsufficientData, sides)
	}

	first, second := pickTwo(s.random, len(sides))
	side1, side2 := sides[first], sides[second]

	candidates, err := heroes.GetHeroesBySides(side1, side2)
	if err != nil {
		return nil, err
	}
	var team1, team2 []models.Hero
	for _, hero := range candidates {
		if hero.Side == side1 {
			team1 = append(team1, hero)
		} else {
			team2 = append(team2, hero)
		}
	}

	hero1 := team1[s.random.IntN(len(team1))]
	hero2 := team2[s.random.IntN(len(team2))]

	slogans := repository.NewSloganRepository(tx)
	slogan1, err := s.pickSlogan(slogans, hero1)
	if err != nil {
		return nil, err
	}
	slogan2, err := s.pickSlogan(slogans, hero2)
	if err != nil {
		return nil, err
	}

	return &models.Clash{
		Hero1ID:       &hero1.ID,
		Hero1SloganID: &slogan1.ID,
		Hero2ID:       &hero2.ID,
		Hero2SloganID: &slogan2.ID,
		Winner:        s.random.IntN(3),
	}, nil
}

func (s *Store) pickSlogan(slogans *repository.SloganRepository, hero models.Hero) (*models.Slogan, error) {
	owned, err := slogans.GetSlogansByHeroID(hero.ID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, fmt.Errorf("%w: hero %q has no slogans", ErrInsufficientData, hero.Name)
	}
	return &owned[s.random.IntN(len(owned))], nil
}

package repository_test

import (
	"testing"
	"time"

	"github.com/latoulicious/roster/pkg/database/models"
	"github.com/latoulicious/roster/pkg/database/repository"
	"github.com/latoulicious/roster/pkg/database/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createHero(t *testing.T, repo *repository.HeroRepository, name, side string) *models.Hero {
	t.Helper()
	hero := &models.Hero{Name: name, Side: side, Birthday: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.CreateHero(hero))
	return hero
}

func TestHeroRepository_DuplicateNameIsTranslated(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	heroes := repository.NewHeroRepository(db)

	createHero(t, heroes, "Alpha", "Red")
	err := heroes.CreateHero(&models.Hero{Name: "Alpha", Side: "Blue", Birthday: time.Now()})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestHeroRepository_GetSidesIsDistinctAndOrdered(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	heroes := repository.NewHeroRepository(db)

	createHero(t, heroes, "Alpha", "Red")
	createHero(t, heroes, "Beta", "Blue")
	createHero(t, heroes, "Gamma", "Red")

	sides, err := heroes.GetSides()
	require.NoError(t, err)
	assert.Equal(t, []string{"Blue", "Red"}, sides)

	found, err := heroes.GetHeroesBySides("Red")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSloganRepository_GetLastMotoID(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	heroes := repository.NewHeroRepository(db)
	slogans := repository.NewSloganRepository(db)

	hero := createHero(t, heroes, "Alpha", "Red")

	last, err := slogans.GetLastMotoID(hero.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	require.NoError(t, slogans.CreateSlogan(&models.Slogan{HeroID: hero.ID, MotoID: 1, Moto: "first"}))
	require.NoError(t, slogans.CreateSlogan(&models.Slogan{HeroID: hero.ID, MotoID: 2, Moto: "second"}))

	last, err = slogans.GetLastMotoID(hero.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, last)
}

func TestHeroRepository_DeleteCascades(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	heroes := repository.NewHeroRepository(db)
	slogans := repository.NewSloganRepository(db)
	stories := repository.NewStoryRepository(db)
	clashes := repository.NewClashRepository(db)

	alpha := createHero(t, heroes, "Alpha", "Red")
	beta := createHero(t, heroes, "Beta", "Blue")
	alphaSlogan := &models.Slogan{HeroID: alpha.ID, MotoID: 1, Moto: "alpha moto"}
	betaSlogan := &models.Slogan{HeroID: beta.ID, MotoID: 1, Moto: "beta moto"}
	require.NoError(t, slogans.CreateSlogan(alphaSlogan))
	require.NoError(t, slogans.CreateSlogan(betaSlogan))
	require.NoError(t, stories.CreateStory(&models.Story{HeroID: alpha.ID, Text: "alpha story"}))
	require.NoError(t, clashes.CreateClash(&models.Clash{
		Hero1ID: &alpha.ID, Hero1SloganID: &alphaSlogan.ID,
		Hero2ID: &beta.ID, Hero2SloganID: &betaSlogan.ID,
		Winner: models.SideOne,
	}))

	deleted, err := heroes.DeleteHeroesByName("Alpha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := slogans.GetSlogansByHeroID(alpha.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	story, err := stories.GetStoryByHeroID(alpha.ID)
	require.NoError(t, err)
	assert.Nil(t, story)

	all, err := clashes.GetAllClashes()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Hero1ID)
	assert.Nil(t, all[0].Hero1SloganID)
	require.NotNil(t, all[0].Hero2ID)
	assert.Equal(t, beta.ID, *all[0].Hero2ID)
}

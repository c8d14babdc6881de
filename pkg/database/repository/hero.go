package repository

import (
	"github.com/latoulicious/roster/pkg/database/models"
	"gorm.io/gorm"
)

// HeroRepository handles database operations for Hero model
type HeroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

func (r *HeroRepository) CreateHero(hero *models.Hero) error {
	return r.db.Create(hero).Error
}

// FindHeroesByName returns at most limit heroes with the exact name
func (r *HeroRepository) FindHeroesByName(name string, limit int) ([]models.Hero, error) {
	var heroes []models.Hero
	if err := r.db.Where("name = ?", name).Order("hero_id").Limit(limit).Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *HeroRepository) GetAllHeroes() ([]models.Hero, error) {
	var heroes []models.Hero
	if err := r.db.Order("hero_id").Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

// GetSides returns the distinct side labels in lexical order
func (r *HeroRepository) GetSides() ([]string, error) {
	var sides []string
	if err := r.db.Model(&models.Hero{}).Distinct("side").Order("side").Pluck("side", &sides).Error; err != nil {
		return nil, err
	}
	return sides, nil
}

func (r *HeroRepository) GetHeroesBySides(sides ...string) ([]models.Hero, error) {
	var heroes []models.Hero
	if err := r.db.Where("side IN ?", sides).Order("hero_id").Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

// DeleteHeroesByName removes every hero with the name and reports how many went
func (r *HeroRepository) DeleteHeroesByName(name string) (int64, error) {
	result := r.db.Where("name = ?", name).Delete(&models.Hero{})
	return result.RowsAffected, result.Error
}

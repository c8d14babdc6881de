package repository

import (
	"github.com/latoulicious/roster/pkg/database/models"
	"gorm.io/gorm"
)

// SloganRepository handles database operations for Slogan model
type SloganRepository struct {
	db *gorm.DB
}

func NewSloganRepository(db *gorm.DB) *SloganRepository {
	return &SloganRepository{db: db}
}

func (r *SloganRepository) CreateSlogan(slogan *models.Slogan) error {
	return r.db.Create(slogan).Error
}

// GetLastMotoID returns the highest moto index of the hero, 0 when it has none
func (r *SloganRepository) GetLastMotoID(heroID uint) (int, error) {
	var last int
	if err := r.db.Model(&models.Slogan{}).
		Select("COALESCE(MAX(moto_id), 0)").
		Where("hero_id = ?", heroID).
		Scan(&last).Error; err != nil {
		return 0, err
	}
	return last, nil
}

func (r *SloganRepository) GetSlogansByHeroID(heroID uint) ([]models.Slogan, error) {
	var slogans []models.Slogan
	if err := r.db.Where("hero_id = ?", heroID).Order("moto_id").Find(&slogans).Error; err != nil {
		return nil, err
	}
	return slogans, nil
}

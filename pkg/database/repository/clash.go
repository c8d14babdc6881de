package repository

import (
	"github.com/latoulicious/roster/pkg/database/models"
	"gorm.io/gorm"
)

// ClashRepository handles database operations for Clash model
type ClashRepository struct {
	db *gorm.DB
}

func NewClashRepository(db *gorm.DB) *ClashRepository {
	return &ClashRepository{db: db}
}

func (r *ClashRepository) CreateClash(clash *models.Clash) error {
	return r.db.Omit("Hero1", "Hero1Slogan", "Hero2", "Hero2Slogan").Create(clash).Error
}

func (r *ClashRepository) GetAllClashes() ([]models.Clash, error) {
	var clashes []models.Clash
	if err := r.db.Order("clash_id").Find(&clashes).Error; err != nil {
		return nil, err
	}
	return clashes, nil
}

package repository

import (
	"errors"

	"github.com/latoulicious/roster/pkg/database/models"
	"gorm.io/gorm"
)

// StoryRepository handles database operations for Story model
type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) CreateStory(story *models.Story) error {
	return r.db.Create(story).Error
}

// GetStoryByHeroID returns the hero's story or nil when it has none
func (r *StoryRepository) GetStoryByHeroID(heroID uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.Where("hero_id = ?", heroID).Order("story_id").First(&story).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

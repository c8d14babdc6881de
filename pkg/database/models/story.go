package models

// Story is a free-text biography attached to a hero
type Story struct {
	ID     uint   `gorm:"column:story_id;primaryKey" json:"story_id"`
	HeroID uint   `gorm:"column:hero_id;not null;uniqueIndex:idx_story_hero_story" json:"hero_id"`
	Text   string `gorm:"column:story;size:500;not null;uniqueIndex:idx_story_hero_story" json:"story"`
}

// TableName returns the table name for Story
func (Story) TableName() string {
	return "story"
}

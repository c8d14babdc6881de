package models

import (
	"time"
)

// Hero represents a named faction member
type Hero struct {
	ID       uint      `gorm:"column:hero_id;primaryKey" json:"hero_id"`
	Name     string    `gorm:"size:20;not null;uniqueIndex" json:"name"`
	Side     string    `gorm:"size:20;not null;index" json:"side"`
	Birthday time.Time `gorm:"not null" json:"birthday"`

	// Relationships
	Slogans []Slogan `gorm:"foreignKey:HeroID;constraint:OnDelete:CASCADE" json:"-"`
	Story   *Story   `gorm:"foreignKey:HeroID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Hero
func (Hero) TableName() string {
	return "hero"
}

package models

// Slogan is a quote attributed to one hero, numbered per hero by MotoID
type Slogan struct {
	ID     uint   `gorm:"column:slogan_id;primaryKey" json:"slogan_id"`
	HeroID uint   `gorm:"column:hero_id;not null;index" json:"hero_id"`
	MotoID int    `gorm:"column:moto_id;not null" json:"moto_id"`
	Moto   string `gorm:"column:moto;size:200;not null;uniqueIndex" json:"moto"`
}

// TableName returns the table name for Slogan
func (Slogan) TableName() string {
	return "slogan"
}

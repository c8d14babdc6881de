package models

// Winner values stored in Clash.Winner
const (
	NoWinner = 0
	SideOne  = 1
	SideTwo  = 2
)

// Clash pairs two heroes from different sides and one slogan of each.
// References are nulled when the hero or slogan is deleted.
type Clash struct {
	ID            uint  `gorm:"column:clash_id;primaryKey" json:"clash_id"`
	Hero1ID       *uint `gorm:"column:hero_1_id;index" json:"hero_1_id"`
	Hero1SloganID *uint `gorm:"column:hero_1_slogan_id" json:"hero_1_slogan_id"`
	Hero2ID       *uint `gorm:"column:hero_2_id;index" json:"hero_2_id"`
	Hero2SloganID *uint `gorm:"column:hero_2_slogan_id" json:"hero_2_slogan_id"`
	Winner        int   `gorm:"not null" json:"winner"`

	// Relationships
	Hero1       *Hero   `gorm:"foreignKey:Hero1ID;constraint:OnDelete:SET NULL" json:"-"`
	Hero1Slogan *Slogan `gorm:"foreignKey:Hero1SloganID;constraint:OnDelete:SET NULL" json:"-"`
	Hero2       *Hero   `gorm:"foreignKey:Hero2ID;constraint:OnDelete:SET NULL" json:"-"`
	Hero2Slogan *Slogan `gorm:"foreignKey:Hero2SloganID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName returns the table name for Clash
func (Clash) TableName() string {
	return "clash"
}

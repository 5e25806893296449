package models

import "gorm.io/gorm"

// Game represents a game owned by the gamer who added it to the catalog.
type Game struct {
	gorm.Model
	Title           string `gorm:"size:55;not null"`
	Maker           string `gorm:"size:55;not null"`
	NumberOfPlayers int    `gorm:"not null"`
	SkillLevel      int    `gorm:"not null"`
	GameTypeID      uint   `gorm:"not null"`
	GamerID         uint   `gorm:"not null"`

	GameType GameType `gorm:"foreignKey:GameTypeID;constraint:OnDelete:CASCADE;"`
	Gamer    Gamer    `gorm:"foreignKey:GamerID;constraint:OnDelete:CASCADE;"`
}

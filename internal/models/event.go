package models

import "gorm.io/gorm"

// Event is a scheduled session of a game, organized by a gamer.
// Date and Time travel as "2006-01-02" / "15:04" strings.
type Event struct {
	gorm.Model
	Description string `gorm:"not null"`
	Date        string `gorm:"size:10;not null"`
	Time        string `gorm:"size:5;not null"`
	GameID      uint   `gorm:"not null"`
	OrganizerID uint   `gorm:"not null"`

	Game      Game     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	Organizer Gamer    `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE;"`
	Attendees []*Gamer `gorm:"many2many:event_gamers;"`
}

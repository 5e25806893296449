package models

import "gorm.io/gorm"

// GameType is a category label for games (e.g. "Board game", "TTRPG").
// Reference data: rows are seeded at migration time, the API only reads them.
type GameType struct {
	gorm.Model
	Label string `gorm:"size:100;unique;not null"`
}

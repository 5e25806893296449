package models

import "gorm.io/gorm"

// Gamer represents a player profile and its login identity.
type Gamer struct {
	gorm.Model
	Username     string `gorm:"size:150;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:150"`
	LastName     string `gorm:"size:150"`
	Bio          string
}

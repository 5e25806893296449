package models

import "gorm.io/gorm"

// AuthToken is the opaque bearer token issued to a gamer at registration.
// One token per gamer; the same key is handed back on every login.
type AuthToken struct {
	gorm.Model
	Key     string `gorm:"size:64;unique;not null"`
	GamerID uint   `gorm:"uniqueIndex;not null"`

	Gamer Gamer `gorm:"foreignKey:GamerID;constraint:OnDelete:CASCADE;"`
}

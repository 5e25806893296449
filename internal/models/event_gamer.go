package models

import "time"

// EventGamer is the attendance join table between events and gamers.
// The composite primary key makes double-registration impossible at the
// store level, so concurrent signups cannot race into duplicate rows.
type EventGamer struct {
	EventID   uint `gorm:"primaryKey"`
	GamerID   uint `gorm:"primaryKey"`
	CreatedAt time.Time
}

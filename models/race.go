package models

import (
	"time"

	"gorm.io/gorm"
)

type Race struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	RaceType      string         `json:"race_type" gorm:"uniqueIndex;not null;size:3"`
	Name          string         `json:"name" gorm:"not null"`
	RerollCost    int            `json:"reroll_cost" gorm:"not null;default:0"`
	HasApothecary bool           `json:"has_apothecary" gorm:"not null;default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	PositionLimits []RacePositionLimit `json:"position_limits,omitempty" gorm:"foreignKey:RaceID"`
}

// RacePositionLimit caps how many players of a position a team of the race
// may roster. No row for a (race, position) pair means the position is not
// available to that race through the catalog, and unconstrained if a player
// of it is rostered anyway.
type RacePositionLimit struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	RaceID     uint           `json:"race_id" gorm:"not null;uniqueIndex:idx_race_position"`
	PositionID uint           `json:"position_id" gorm:"not null;uniqueIndex:idx_race_position"`
	MaxCount   int            `json:"max_count" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Race     Race     `json:"race,omitempty"`
	Position Position `json:"position,omitempty"`
}

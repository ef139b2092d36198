package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	CoachID          uint           `json:"coach_id" gorm:"not null"`
	TeamName         string         `json:"team_name" gorm:"uniqueIndex;not null"`
	RaceID           uint           `json:"race_id" gorm:"not null"`
	Treasury         int            `json:"treasury" gorm:"not null;default:1000000"`
	TeamReRoll       int            `json:"team_re_roll" gorm:"not null;default:0"`
	FanFactor        int            `json:"fan_factor" gorm:"not null;default:1"`
	AssistantCoaches int            `json:"assistant_coaches" gorm:"not null;default:0"`
	Cheerleaders     int            `json:"cheerleaders" gorm:"not null;default:0"`
	Apothecary       bool           `json:"apothecary" gorm:"not null;default:false"`
	CTV              int            `json:"ctv" gorm:"not null;default:0"` // derived, recomputed on every save
	Wins             int            `json:"wins" gorm:"not null;default:0"`
	Losses           int            `json:"losses" gorm:"not null;default:0"`
	Draws            int            `json:"draws" gorm:"not null;default:0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Coach   Coach    `json:"coach,omitempty"`
	Race    Race     `json:"race,omitempty"`
	Players []Player `json:"players,omitempty" gorm:"foreignKey:PlayerTeamID"`
}

// TotalMatches returns how many matches the team has played.
func (t *Team) TotalMatches() int {
	return t.Wins + t.Losses + t.Draws
}

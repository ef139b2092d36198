package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PlayerStatusActive  = "active"
	PlayerStatusInjured = "injured"
	PlayerStatusDead    = "dead"
)

// Player levels range from 1 (Rookie) to 6 (Legend).
const (
	LevelRookie = 1
	LevelLegend = 6
)

type Player struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	PositionID   uint   `json:"position_id" gorm:"not null"`
	PlayerTeamID *uint  `json:"player_team_id" gorm:"uniqueIndex:idx_team_number"`
	FormerTeamID *uint  `json:"former_team_id"`
	GraveyardID  *uint  `json:"graveyard_id"`
	Level        int    `json:"level" gorm:"not null;default:1"`
	SPP          int    `json:"spp" gorm:"not null;default:0"`
	Value        int    `json:"value" gorm:"not null"`

	// Stat block snapshotted from the position at hiring time.
	Movement int  `json:"movement" gorm:"not null;default:0"`
	Strength int  `json:"strength" gorm:"not null;default:0"`
	Agility  int  `json:"agility" gorm:"not null;default:0"`
	Armor    int  `json:"armor" gorm:"not null;default:0"`
	Passing  *int `json:"passing"`

	IsJourneyman     bool           `json:"is_journeyman" gorm:"not null;default:false"`
	Number           int            `json:"number" gorm:"not null;uniqueIndex:idx_team_number"`
	Status           string         `json:"status" gorm:"not null;default:'active'"` // active, injured, dead
	NigglingInjuries int            `json:"niggling_injuries" gorm:"not null;default:0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Position                 Position        `json:"position,omitempty"`
	Skills                   []Skill         `json:"skills,omitempty" gorm:"many2many:player_skills;"`
	Traits                   []Trait         `json:"traits,omitempty" gorm:"many2many:player_traits;"`
	PrimarySkillCategories   []SkillCategory `json:"primary_skill_categories,omitempty" gorm:"many2many:player_primary_categories;"`
	SecondarySkillCategories []SkillCategory `json:"secondary_skill_categories,omitempty" gorm:"many2many:player_secondary_categories;"`
}

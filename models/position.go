package models

import (
	"time"

	"gorm.io/gorm"
)

type Position struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Movement  int            `json:"movement" gorm:"not null;default:0"`
	Strength  int            `json:"strength" gorm:"not null;default:0"`
	Agility   int            `json:"agility" gorm:"not null;default:0"`
	Armor     int            `json:"armor" gorm:"not null;default:0"`
	Passing   *int           `json:"passing"`
	Cost      int            `json:"cost" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Traits                   []Trait         `json:"traits,omitempty" gorm:"many2many:position_traits;"`
	StartingSkills           []Skill         `json:"starting_skills,omitempty" gorm:"many2many:position_starting_skills;"`
	PrimarySkillCategories   []SkillCategory `json:"primary_skill_categories,omitempty" gorm:"many2many:position_primary_categories;"`
	SecondarySkillCategories []SkillCategory `json:"secondary_skill_categories,omitempty" gorm:"many2many:position_secondary_categories;"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Coach struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CoachName    string         `json:"coach_name" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:CoachID"`
}

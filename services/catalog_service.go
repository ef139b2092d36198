package services

import (
	"errors"

	"bbmanager/models"

	"gorm.io/gorm"
)

// CatalogService reads the seeded reference data. Nothing here mutates.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) GetRaces() ([]models.Race, error) {
	var races []models.Race
	err := s.db.Order("name").Find(&races).Error
	return races, err
}

func (s *CatalogService) GetRaceByID(raceID uint) (*models.Race, error) {
	var race models.Race
	err := s.db.
		Preload("PositionLimits").
		Preload("PositionLimits.Position").
		Preload("PositionLimits.Position.Traits").
		Preload("PositionLimits.Position.StartingSkills").
		Preload("PositionLimits.Position.PrimarySkillCategories").
		Preload("PositionLimits.Position.SecondarySkillCategories").
		First(&race, raceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, err
	}
	return &race, nil
}

// GetPositionsForRace returns the hireable positions with their roster caps.
func (s *CatalogService) GetPositionsForRace(raceID uint) ([]models.RacePositionLimit, error) {
	var limits []models.RacePositionLimit
	err := s.db.Where("race_id = ?", raceID).
		Preload("Position").
		Preload("Position.Traits").
		Preload("Position.StartingSkills").
		Find(&limits).Error
	return limits, err
}

func (s *CatalogService) GetSkillCategories() ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	err := s.db.Preload("Skills").Order("name").Find(&categories).Error
	return categories, err
}

func (s *CatalogService) GetTraits() ([]models.Trait, error) {
	var traits []models.Trait
	err := s.db.Order("name").Find(&traits).Error
	return traits, err
}

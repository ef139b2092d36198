// Package seed loads the static reference data (skills, traits, races,
// positions and their roster caps) from JSON fixtures. Loaders are
// idempotent lookups-or-creates, and position/race fixtures assume the
// skills, traits and categories they name were loaded first.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bbmanager/models"

	"gorm.io/gorm"
)

type skillCategoryFixture struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type traitFixture struct {
	Name string `json:"name"`
}

type raceFixture struct {
	Race          string `json:"race"`
	Name          string `json:"name"`
	RerollCost    int    `json:"reroll_cost"`
	HasApothecary bool   `json:"has_apothecary"`
	Positions     []struct {
		Name     string `json:"name"`
		MaxCount int    `json:"max_count"`
	} `json:"positions"`
}

type positionFixture struct {
	Name                     string   `json:"name"`
	Movement                 int      `json:"movement"`
	Strength                 int      `json:"strength"`
	Agility                  int      `json:"agility"`
	Armor                    int      `json:"armor"`
	Passing                  *int     `json:"passing"`
	Cost                     int      `json:"cost"`
	Traits                   []string `json:"traits"`
	StartingSkills           []string `json:"starting_skills"`
	PrimarySkillCategories   []string `json:"primary_skill_categories"`
	SecondarySkillCategories []string `json:"secondary_skill_categories"`
}

// LoadAll loads every fixture file present in dir. Files are optional;
// ordering matters only in that positions reference skills/traits/categories
// and races reference positions.
func LoadAll(db *gorm.DB, dir string) error {
	steps := []struct {
		file string
		load func(*gorm.DB, string) error
	}{
		{"skills.json", LoadSkills},
		{"traits.json", LoadTraits},
		{"positions.json", LoadPositions},
		{"races.json", LoadRaces},
	}

	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := step.load(db, path); err != nil {
			return fmt.Errorf("loading %s: %w", step.file, err)
		}
	}
	return nil
}

func LoadSkills(db *gorm.DB, path string) error {
	var fixtures []skillCategoryFixture
	if err := readFixture(path, &fixtures); err != nil {
		return err
	}

	for _, fixture := range fixtures {
		var category models.SkillCategory
		if err := db.Where(models.SkillCategory{Name: fixture.Category}).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}

		for _, skillName := range fixture.Skills {
			var skill models.Skill
			if err := db.Where(models.Skill{Name: skillName}).
				FirstOrCreate(&skill).Error; err != nil {
				return err
			}
			if err := db.Model(&category).Association("Skills").Append(&skill); err != nil {
				return err
			}
		}
	}
	return nil
}

func LoadTraits(db *gorm.DB, path string) error {
	var fixtures []traitFixture
	if err := readFixture(path, &fixtures); err != nil {
		return err
	}

	for _, fixture := range fixtures {
		var trait models.Trait
		if err := db.Where(models.Trait{Name: fixture.Name}).
			FirstOrCreate(&trait).Error; err != nil {
			return err
		}
	}
	return nil
}

func LoadPositions(db *gorm.DB, path string) error {
	var fixtures []positionFixture
	if err := readFixture(path, &fixtures); err != nil {
		return err
	}

	for _, fixture := range fixtures {
		var position models.Position
		err := db.Where("name = ?", fixture.Name).First(&position).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		position = models.Position{
			Name:     fixture.Name,
			Movement: fixture.Movement,
			Strength: fixture.Strength,
			Agility:  fixture.Agility,
			Armor:    fixture.Armor,
			Passing:  fixture.Passing,
			Cost:     fixture.Cost,
		}
		if err := db.Create(&position).Error; err != nil {
			return err
		}

		if err := appendByName(db, &position, "Traits", &models.Trait{}, fixture.Traits); err != nil {
			return err
		}
		if err := appendByName(db, &position, "StartingSkills", &models.Skill{}, fixture.StartingSkills); err != nil {
			return err
		}
		if err := appendByName(db, &position, "PrimarySkillCategories", &models.SkillCategory{}, fixture.PrimarySkillCategories); err != nil {
			return err
		}
		if err := appendByName(db, &position, "SecondarySkillCategories", &models.SkillCategory{}, fixture.SecondarySkillCategories); err != nil {
			return err
		}
	}
	return nil
}

func LoadRaces(db *gorm.DB, path string) error {
	var fixtures []raceFixture
	if err := readFixture(path, &fixtures); err != nil {
		return err
	}

	for _, fixture := range fixtures {
		var race models.Race
		err := db.Where("race_type = ?", fixture.Race).First(&race).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		race = models.Race{
			RaceType:      fixture.Race,
			Name:          fixture.Name,
			RerollCost:    fixture.RerollCost,
			HasApothecary: fixture.HasApothecary,
		}
		if err := db.Create(&race).Error; err != nil {
			return err
		}

		for _, entry := range fixture.Positions {
			var position models.Position
			if err := db.Where("name = ?", entry.Name).First(&position).Error; err != nil {
				return fmt.Errorf("race %s references unknown position %q: %w", fixture.Race, entry.Name, err)
			}

			limit := models.RacePositionLimit{
				RaceID:     race.ID,
				PositionID: position.ID,
				MaxCount:   entry.MaxCount,
			}
			if err := db.Create(&limit).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// appendByName resolves the named rows one by one and attaches them to the
// association. Referenced names must already exist.
func appendByName(db *gorm.DB, position *models.Position, association string, model interface{}, names []string) error {
	for _, name := range names {
		if err := db.Where("name = ?", name).First(model).Error; err != nil {
			return fmt.Errorf("position %s references unknown %s %q: %w", position.Name, association, name, err)
		}
		if err := db.Model(position).Association(association).Append(model); err != nil {
			return err
		}
	}
	return nil
}

func readFixture(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

package services

import (
	"errors"
	"log"

	"bbmanager/models"

	"gorm.io/gorm"
)

type RosterService struct {
	db    *gorm.DB
	teams *TeamService
}

func NewRosterService(db *gorm.DB, teams *TeamService) *RosterService {
	return &RosterService{
		db:    db,
		teams: teams,
	}
}

type CreatePlayerRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=64"`
	PositionID uint   `json:"position_id" binding:"required"`
	Number     int    `json:"number" binding:"required"`
}

// CreatePlayer hires a player for the team. The roster rules are checked
// first; on success the player row, its copied skill/trait sets and the
// treasury debit all commit together or not at all.
func (s *RosterService) CreatePlayer(teamID, coachID uint, req *CreatePlayerRequest) (*models.Player, error) {
	var player models.Player

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := lockTeam(tx, teamID, coachID, &team); err != nil {
			return err
		}

		var position models.Position
		if err := tx.
			Preload("Traits").
			Preload("StartingSkills").
			Preload("PrimarySkillCategories").
			Preload("SecondarySkillCategories").
			First(&position, req.PositionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPositionNotFound
			}
			return err
		}

		limit, err := findPositionLimit(tx, team.RaceID, position.ID)
		if err != nil {
			return err
		}

		var roster []models.Player
		if err := tx.Where("player_team_id = ?", team.ID).Find(&roster).Error; err != nil {
			return err
		}

		if err := ValidatePlayerAddition(&team, roster, &position, limit, req.Number); err != nil {
			return err
		}

		player = models.Player{
			Name:         req.Name,
			PositionID:   position.ID,
			PlayerTeamID: &team.ID,
			Level:        models.LevelRookie,
			Value:        position.Cost,
			Movement:     position.Movement,
			Strength:     position.Strength,
			Agility:      position.Agility,
			Armor:        position.Armor,
			Passing:      position.Passing,
			Number:       req.Number,
			Status:       models.PlayerStatusActive,
		}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}

		if err := copyPositionSets(tx, &player, &position); err != nil {
			return err
		}

		team.Treasury -= position.Cost
		return refreshTeamValue(tx, &team)
	})
	if err != nil {
		return nil, err
	}

	s.refreshCache(teamID, coachID)
	return &player, nil
}

// SetPlayerStatus flips a rostered player between active and injured.
// Injured players keep their roster slot but drop out of the team value.
func (s *RosterService) SetPlayerStatus(teamID, coachID, playerID uint, status string) (*models.Player, error) {
	if status != models.PlayerStatusActive && status != models.PlayerStatusInjured {
		return nil, ErrInvalidStatus
	}

	var player models.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := lockTeam(tx, teamID, coachID, &team); err != nil {
			return err
		}

		if err := findRosteredPlayer(tx, team.ID, playerID, &player); err != nil {
			return err
		}
		if player.Status == models.PlayerStatusDead {
			return ErrPlayerNotRostered
		}

		player.Status = status
		if err := tx.Save(&player).Error; err != nil {
			return err
		}
		return refreshTeamValue(tx, &team)
	})
	if err != nil {
		return nil, err
	}

	s.refreshCache(teamID, coachID)
	return &player, nil
}

// KillPlayer moves the player to the team's graveyard. The jersey number is
// freed for reuse immediately.
func (s *RosterService) KillPlayer(teamID, coachID, playerID uint) (*models.Player, error) {
	var player models.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := lockTeam(tx, teamID, coachID, &team); err != nil {
			return err
		}

		if err := findRosteredPlayer(tx, team.ID, playerID, &player); err != nil {
			return err
		}

		player.Status = models.PlayerStatusDead
		player.FormerTeamID = &team.ID
		player.GraveyardID = &team.ID
		player.PlayerTeamID = nil
		if err := tx.Save(&player).Error; err != nil {
			return err
		}
		return refreshTeamValue(tx, &team)
	})
	if err != nil {
		return nil, err
	}

	s.refreshCache(teamID, coachID)
	return &player, nil
}

// ReleasePlayer detaches the player from the roster without pay-out. The
// jersey number is freed for reuse immediately.
func (s *RosterService) ReleasePlayer(teamID, coachID, playerID uint) (*models.Player, error) {
	var player models.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := lockTeam(tx, teamID, coachID, &team); err != nil {
			return err
		}

		if err := findRosteredPlayer(tx, team.ID, playerID, &player); err != nil {
			return err
		}

		player.FormerTeamID = &team.ID
		player.PlayerTeamID = nil
		if err := tx.Save(&player).Error; err != nil {
			return err
		}
		return refreshTeamValue(tx, &team)
	})
	if err != nil {
		return nil, err
	}

	s.refreshCache(teamID, coachID)
	return &player, nil
}

// GetGraveyard lists the team's dead players.
func (s *RosterService) GetGraveyard(teamID, coachID uint) ([]models.Player, error) {
	var team models.Team
	if err := s.db.Where("id = ? AND coach_id = ?", teamID, coachID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	var dead []models.Player
	err := s.db.Where("graveyard_id = ?", teamID).
		Preload("Position").
		Order("updated_at DESC").
		Find(&dead).Error
	return dead, err
}

func (s *RosterService) refreshCache(teamID, coachID uint) {
	if _, err := s.teams.GetTeamSummaryFresh(teamID, coachID); err != nil {
		log.Printf("Failed to refresh summary cache for team %d: %v", teamID, err)
	}
}

func findRosteredPlayer(tx *gorm.DB, teamID, playerID uint, player *models.Player) error {
	err := tx.Where("id = ? AND player_team_id = ?", playerID, teamID).First(player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPlayerNotRostered
	}
	return err
}

// findPositionLimit returns the roster cap row for the race/position pair, or
// nil when none is configured (the position is then unconstrained).
func findPositionLimit(tx *gorm.DB, raceID, positionID uint) (*models.RacePositionLimit, error) {
	var limit models.RacePositionLimit
	err := tx.Where("race_id = ? AND position_id = ?", raceID, positionID).First(&limit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &limit, nil
}

func copyPositionSets(tx *gorm.DB, player *models.Player, position *models.Position) error {
	if len(position.StartingSkills) > 0 {
		if err := tx.Model(player).Association("Skills").Append(position.StartingSkills); err != nil {
			return err
		}
	}
	if len(position.Traits) > 0 {
		if err := tx.Model(player).Association("Traits").Append(position.Traits); err != nil {
			return err
		}
	}
	if len(position.PrimarySkillCategories) > 0 {
		if err := tx.Model(player).Association("PrimarySkillCategories").Append(position.PrimarySkillCategories); err != nil {
			return err
		}
	}
	if len(position.SecondarySkillCategories) > 0 {
		if err := tx.Model(player).Association("SecondarySkillCategories").Append(position.SecondarySkillCategories); err != nil {
			return err
		}
	}
	return nil
}

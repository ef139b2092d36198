package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bbmanager/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const StartingTreasury = 1000000

type TeamService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewTeamService(db *gorm.DB, redis *redis.Client) *TeamService {
	return &TeamService{
		db:    db,
		redis: redis,
	}
}

type CreateTeamRequest struct {
	TeamName string `json:"team_name" binding:"required,min=1,max=100"`
	RaceID   uint   `json:"race_id" binding:"required"`
}

type RecordMatchRequest struct {
	Result string `json:"result" binding:"required"` // win, loss, draw
}

// TeamSummary is the derived view of a team mirrored into Redis after every
// mutation, so team pages and websocket syncs don't re-aggregate the roster.
type TeamSummary struct {
	TeamID           uint   `json:"team_id"`
	TeamName         string `json:"team_name"`
	RaceType         string `json:"race_type"`
	Treasury         int    `json:"treasury"`
	CTV              int    `json:"ctv"`
	TeamReRoll       int    `json:"team_re_roll"`
	AssistantCoaches int    `json:"assistant_coaches"`
	Cheerleaders     int    `json:"cheerleaders"`
	Apothecary       bool   `json:"apothecary"`
	ActivePlayers    int    `json:"active_players"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	Draws            int    `json:"draws"`
	NextRerollCost   int    `json:"next_reroll_cost"`
}

func (s *TeamService) CreateTeam(coachID uint, req *CreateTeamRequest) (*models.Team, error) {
	var race models.Race
	if err := s.db.First(&race, req.RaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, err
	}

	team := models.Team{
		CoachID:   coachID,
		TeamName:  req.TeamName,
		RaceID:    race.ID,
		Treasury:  StartingTreasury,
		FanFactor: 1,
	}

	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}

	team.Race = race
	s.cacheSummary(&team, 0)
	return &team, nil
}

func (s *TeamService) GetCoachTeams(coachID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Where("coach_id = ?", coachID).
		Preload("Race").
		Order("created_at DESC").
		Find(&teams).Error
	return teams, err
}

func (s *TeamService) GetTeamByID(teamID uint, coachID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("id = ? AND coach_id = ?", teamID, coachID).
		Preload("Race").
		Preload("Race.PositionLimits").
		Preload("Race.PositionLimits.Position").
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("players.number")
		}).
		Preload("Players.Position").
		Preload("Players.Skills").
		Preload("Players.Traits").
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetTeamSummary serves the cached summary, rebuilding it from the database
// when Redis has nothing. The cache key carries no owner, so ownership is
// checked before the cached value is served.
func (s *TeamService) GetTeamSummary(teamID uint, coachID uint) (*TeamSummary, error) {
	if err := s.verifyOwnership(teamID, coachID); err != nil {
		return nil, err
	}
	if summary := s.getCachedSummary(teamID); summary != nil {
		return summary, nil
	}
	return s.GetTeamSummaryFresh(teamID, coachID)
}

func (s *TeamService) verifyOwnership(teamID, coachID uint) error {
	var count int64
	err := s.db.Model(&models.Team{}).
		Where("id = ? AND coach_id = ?", teamID, coachID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTeamNotFound
	}
	return nil
}

// GetTeamSummaryFresh rebuilds the summary from the database and re-caches
// it, bypassing whatever Redis currently holds.
func (s *TeamService) GetTeamSummaryFresh(teamID uint, coachID uint) (*TeamSummary, error) {
	team, err := s.GetTeamByID(teamID, coachID)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, player := range team.Players {
		if player.Status == models.PlayerStatusActive {
			active++
		}
	}
	return s.cacheSummary(team, active), nil
}

// BuyReroll purchases a team re-roll at the current rate. A failed guard
// (cap reached or treasury short) leaves the team unchanged and reports no
// error, the ledger's long-standing contract.
func (s *TeamService) BuyReroll(teamID, coachID uint) (*models.Team, error) {
	return s.purchase(teamID, coachID, ApplyRerollPurchase)
}

func (s *TeamService) BuyApothecary(teamID, coachID uint) (*models.Team, error) {
	return s.purchase(teamID, coachID, ApplyApothecaryPurchase)
}

func (s *TeamService) BuyAssistantCoach(teamID, coachID uint) (*models.Team, error) {
	return s.purchase(teamID, coachID, ApplyAssistantCoachPurchase)
}

func (s *TeamService) BuyCheerleader(teamID, coachID uint) (*models.Team, error) {
	return s.purchase(teamID, coachID, ApplyCheerleaderPurchase)
}

// purchase runs one guarded debit inside a transaction. The team row is
// re-read under a row lock so concurrent purchases cannot both pass the
// affordability check against a stale treasury.
func (s *TeamService) purchase(teamID, coachID uint, apply func(*models.Team) bool) (*models.Team, error) {
	var team models.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockTeam(tx, teamID, coachID, &team); err != nil {
			return err
		}

		if !apply(&team) {
			return nil
		}
		return refreshTeamValue(tx, &team)
	})
	if err != nil {
		return nil, err
	}

	s.cacheSummary(&team, s.countActivePlayers(team.ID))
	return &team, nil
}

// RecordMatchResult bumps the team's win/loss/draw counters. After the first
// recorded match, new re-rolls cost double.
func (s *TeamService) RecordMatchResult(teamID, coachID uint, req *RecordMatchRequest) (*models.Team, error) {
	var team models.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockTeam(tx, teamID, coachID, &team); err != nil {
			return err
		}

		switch req.Result {
		case "win":
			team.Wins++
		case "loss":
			team.Losses++
		case "draw":
			team.Draws++
		default:
			return ErrInvalidResult
		}
		return refreshTeamValue(tx, &team)
	})
	if err != nil {
		return nil, err
	}

	s.cacheSummary(&team, s.countActivePlayers(team.ID))
	return &team, nil
}

func (s *TeamService) countActivePlayers(teamID uint) int {
	var count int64
	err := s.db.Model(&models.Player{}).
		Where("player_team_id = ? AND status = ?", teamID, models.PlayerStatusActive).
		Count(&count).Error
	if err != nil {
		log.Printf("Failed to count active players for team %d: %v", teamID, err)
	}
	return int(count)
}

func (s *TeamService) cacheSummary(team *models.Team, activePlayers int) *TeamSummary {
	summary := &TeamSummary{
		TeamID:           team.ID,
		TeamName:         team.TeamName,
		RaceType:         team.Race.RaceType,
		Treasury:         team.Treasury,
		CTV:              team.CTV,
		TeamReRoll:       team.TeamReRoll,
		AssistantCoaches: team.AssistantCoaches,
		Cheerleaders:     team.Cheerleaders,
		Apothecary:       team.Apothecary,
		ActivePlayers:    activePlayers,
		Wins:             team.Wins,
		Losses:           team.Losses,
		Draws:            team.Draws,
		NextRerollCost:   RerollCost(team),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		log.Printf("Failed to marshal summary for team %d: %v", team.ID, err)
		return summary
	}

	if err := s.redis.Set(context.Background(), teamSummaryKey(team.ID), data, 2*time.Hour).Err(); err != nil {
		log.Printf("Failed to cache summary for team %d: %v", team.ID, err)
	}
	return summary
}

func (s *TeamService) getCachedSummary(teamID uint) *TeamSummary {
	data, err := s.redis.Get(context.Background(), teamSummaryKey(teamID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error reading summary for team %d: %v", teamID, err)
		}
		return nil
	}

	var summary TeamSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		log.Printf("Failed to unmarshal summary for team %d: %v", teamID, err)
		return nil
	}
	return &summary
}

func teamSummaryKey(teamID uint) string {
	return fmt.Sprintf("team:%d", teamID)
}

// lockTeam re-reads the team row under FOR UPDATE, scoped to its owner, and
// loads the race alongside since every rule needs its economics.
func lockTeam(tx *gorm.DB, teamID, coachID uint, team *models.Team) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND coach_id = ?", teamID, coachID).
		First(team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	return tx.First(&team.Race, team.RaceID).Error
}

// refreshTeamValue recomputes the derived CTV from the current roster and
// persists the team. Must run inside the mutating transaction.
func refreshTeamValue(tx *gorm.DB, team *models.Team) error {
	var players []models.Player
	if err := tx.Where("player_team_id = ?", team.ID).Find(&players).Error; err != nil {
		return err
	}
	team.CTV = TeamValue(team, players)
	return tx.Save(team).Error
}

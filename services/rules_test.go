package services

import (
	"errors"
	"testing"

	"bbmanager/models"
)

func testTeam(treasury int) models.Team {
	return models.Team{
		ID:       1,
		TeamName: "Reikland Reavers",
		RaceID:   1,
		Treasury: treasury,
		Race: models.Race{
			ID:            1,
			RaceType:      "HUM",
			Name:          "Human",
			RerollCost:    50000,
			HasApothecary: true,
		},
	}
}

func activePlayer(number int, positionID uint, value int) models.Player {
	teamID := uint(1)
	return models.Player{
		Number:       number,
		PositionID:   positionID,
		Value:        value,
		Status:       models.PlayerStatusActive,
		PlayerTeamID: &teamID,
	}
}

func TestValidatePlayerAddition(t *testing.T) {
	position := models.Position{ID: 7, Name: "Lineman", Cost: 50000}
	limit := models.RacePositionLimit{RaceID: 1, PositionID: 7, MaxCount: 4}

	tests := []struct {
		name     string
		treasury int
		roster   []models.Player
		limit    *models.RacePositionLimit
		number   int
		err      error
	}{
		{
			name:     "valid addition",
			treasury: 50000,
			limit:    &limit,
			number:   1,
		},
		{
			name:     "number below range",
			treasury: 50000,
			limit:    &limit,
			number:   0,
			err:      ErrInvalidNumber,
		},
		{
			name:     "number above range",
			treasury: 50000,
			limit:    &limit,
			number:   17,
			err:      ErrInvalidNumber,
		},
		{
			name:     "number sixteen is valid",
			treasury: 50000,
			limit:    &limit,
			number:   16,
		},
		{
			name:     "duplicate number",
			treasury: 500000,
			roster:   []models.Player{activePlayer(5, 7, 50000)},
			limit:    &limit,
			number:   5,
			err:      ErrDuplicateNumber,
		},
		{
			name:     "dead player frees their number",
			treasury: 500000,
			roster: []models.Player{{
				Number:     5,
				PositionID: 7,
				Status:     models.PlayerStatusDead,
			}},
			limit:  &limit,
			number: 5,
		},
		{
			name:     "injured player keeps their number",
			treasury: 500000,
			roster: []models.Player{{
				Number:     5,
				PositionID: 7,
				Status:     models.PlayerStatusInjured,
			}},
			limit:  &limit,
			number: 5,
			err:    ErrDuplicateNumber,
		},
		{
			name:     "insufficient funds",
			treasury: 49999,
			limit:    &limit,
			number:   1,
			err:      ErrInsufficientFunds,
		},
		{
			name:     "position limit reached",
			treasury: 500000,
			roster: []models.Player{
				activePlayer(1, 7, 50000),
				activePlayer(2, 7, 50000),
				activePlayer(3, 7, 50000),
				activePlayer(4, 7, 50000),
			},
			limit:  &limit,
			number: 5,
			err:    ErrPositionLimitReached,
		},
		{
			name:     "injured players do not count toward the limit",
			treasury: 500000,
			roster: []models.Player{
				activePlayer(1, 7, 50000),
				activePlayer(2, 7, 50000),
				activePlayer(3, 7, 50000),
				{Number: 4, PositionID: 7, Status: models.PlayerStatusInjured},
			},
			limit:  &limit,
			number: 5,
		},
		{
			name:     "zero limit always fails regardless of treasury",
			treasury: 1000000,
			limit:    &models.RacePositionLimit{RaceID: 1, PositionID: 7, MaxCount: 0},
			number:   1,
			err:      ErrPositionLimitReached,
		},
		{
			name:     "no limit row means unconstrained",
			treasury: 500000,
			roster: []models.Player{
				activePlayer(1, 7, 50000),
				activePlayer(2, 7, 50000),
				activePlayer(3, 7, 50000),
				activePlayer(4, 7, 50000),
				activePlayer(5, 7, 50000),
			},
			number: 6,
		},
		{
			name:     "number check runs before funds check",
			treasury: 0,
			limit:    &limit,
			number:   20,
			err:      ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := testTeam(tt.treasury)
			err := ValidatePlayerAddition(&team, tt.roster, &position, tt.limit, tt.number)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
		})
	}
}

func TestTeamValueSumsActiveRosterAndUpgrades(t *testing.T) {
	team := testTeam(0)
	team.TeamReRoll = 2
	team.Apothecary = true
	team.AssistantCoaches = 3
	team.Cheerleaders = 1

	players := []models.Player{
		activePlayer(1, 7, 50000),
		activePlayer(2, 7, 85000),
		{Number: 3, PositionID: 7, Value: 90000, Status: models.PlayerStatusInjured},
		{Number: 4, PositionID: 7, Value: 70000, Status: models.PlayerStatusDead},
	}

	// 135,000 players + 100,000 rerolls + 50,000 apothecary + 30,000
	// assistants + 10,000 cheerleaders
	want := 325000
	if got := TeamValue(&team, players); got != want {
		t.Fatalf("expected team value %d, got %d", want, got)
	}

	// Derived value must be stable across repeated computation.
	if got := TeamValue(&team, players); got != want {
		t.Fatalf("expected repeated team value %d, got %d", want, got)
	}
}

func TestTeamValueZeroForUnpersistedTeam(t *testing.T) {
	team := testTeam(1000000)
	team.ID = 0
	team.TeamReRoll = 3
	if got := TeamValue(&team, nil); got != 0 {
		t.Fatalf("expected 0 for unpersisted team, got %d", got)
	}
}

func TestRerollCostDoublesAfterFirstMatch(t *testing.T) {
	team := testTeam(0)
	if got := RerollCost(&team); got != 50000 {
		t.Fatalf("expected base reroll cost 50000, got %d", got)
	}

	team.Draws = 1
	if got := RerollCost(&team); got != 100000 {
		t.Fatalf("expected doubled reroll cost 100000, got %d", got)
	}

	team.Wins = 4
	team.Losses = 2
	if got := RerollCost(&team); got != 100000 {
		t.Fatalf("expected doubled reroll cost 100000, got %d", got)
	}
}

func TestApplyRerollPurchase(t *testing.T) {
	t.Run("success debits treasury and adds a reroll", func(t *testing.T) {
		team := testTeam(60000)
		if !ApplyRerollPurchase(&team) {
			t.Fatal("expected purchase to succeed")
		}
		if team.Treasury != 10000 || team.TeamReRoll != 1 {
			t.Fatalf("expected treasury 10000 and 1 reroll, got %d and %d", team.Treasury, team.TeamReRoll)
		}
	})

	t.Run("insufficient treasury is a no-op", func(t *testing.T) {
		team := testTeam(0)
		if ApplyRerollPurchase(&team) {
			t.Fatal("expected purchase to fail")
		}
		if team.Treasury != 0 || team.TeamReRoll != 0 {
			t.Fatalf("expected state unchanged, got treasury %d and %d rerolls", team.Treasury, team.TeamReRoll)
		}
	})

	t.Run("cap of eight rerolls is a no-op", func(t *testing.T) {
		team := testTeam(1000000)
		team.TeamReRoll = MaxTeamRerolls
		if ApplyRerollPurchase(&team) {
			t.Fatal("expected purchase to fail at the cap")
		}
		if team.Treasury != 1000000 || team.TeamReRoll != MaxTeamRerolls {
			t.Fatal("expected state unchanged at the cap")
		}
	})

	t.Run("charges the doubled rate after a match", func(t *testing.T) {
		team := testTeam(100000)
		team.Wins = 1
		if !ApplyRerollPurchase(&team) {
			t.Fatal("expected purchase to succeed")
		}
		if team.Treasury != 0 {
			t.Fatalf("expected treasury 0 after doubled-rate purchase, got %d", team.Treasury)
		}
	})
}

func TestApplyApothecaryPurchase(t *testing.T) {
	t.Run("exact treasury empties to zero", func(t *testing.T) {
		team := testTeam(50000)
		if !ApplyApothecaryPurchase(&team) {
			t.Fatal("expected purchase to succeed")
		}
		if team.Treasury != 0 || !team.Apothecary {
			t.Fatalf("expected treasury 0 and apothecary owned, got %d and %v", team.Treasury, team.Apothecary)
		}
	})

	t.Run("already owned is a no-op", func(t *testing.T) {
		team := testTeam(500000)
		team.Apothecary = true
		if ApplyApothecaryPurchase(&team) {
			t.Fatal("expected purchase to fail when already owned")
		}
		if team.Treasury != 500000 {
			t.Fatal("expected treasury unchanged")
		}
	})

	t.Run("race without apothecary is a no-op", func(t *testing.T) {
		team := testTeam(500000)
		team.Race.HasApothecary = false
		if ApplyApothecaryPurchase(&team) {
			t.Fatal("expected purchase to fail for race without apothecary")
		}
		if team.Apothecary || team.Treasury != 500000 {
			t.Fatal("expected state unchanged")
		}
	})
}

func TestApplySupportStaffPurchases(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*models.Team) bool
		count func(*models.Team) int
	}{
		{
			name:  "assistant coach",
			apply: ApplyAssistantCoachPurchase,
			count: func(team *models.Team) int { return team.AssistantCoaches },
		},
		{
			name:  "cheerleader",
			apply: ApplyCheerleaderPurchase,
			count: func(team *models.Team) int { return team.Cheerleaders },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := testTeam(25000)
			if !tt.apply(&team) {
				t.Fatal("expected first purchase to succeed")
			}
			if !tt.apply(&team) {
				t.Fatal("expected second purchase to succeed")
			}
			if team.Treasury != 5000 || tt.count(&team) != 2 {
				t.Fatalf("expected treasury 5000 and count 2, got %d and %d", team.Treasury, tt.count(&team))
			}

			// Third purchase cannot be afforded.
			if tt.apply(&team) {
				t.Fatal("expected purchase to fail on short treasury")
			}
			if team.Treasury != 5000 || tt.count(&team) != 2 {
				t.Fatal("expected state unchanged after failed purchase")
			}
		})
	}

	t.Run("cap of eight is a no-op", func(t *testing.T) {
		team := testTeam(1000000)
		team.AssistantCoaches = MaxSupportStaff
		if ApplyAssistantCoachPurchase(&team) {
			t.Fatal("expected purchase to fail at the cap")
		}
		team.Cheerleaders = MaxSupportStaff
		if ApplyCheerleaderPurchase(&team) {
			t.Fatal("expected purchase to fail at the cap")
		}
		if team.Treasury != 1000000 {
			t.Fatal("expected treasury unchanged at the caps")
		}
	})
}

func TestInjuredPlayerBlocksNumberReuse(t *testing.T) {
	team := testTeam(1000000)
	position := models.Position{ID: 7, Name: "Lineman", Cost: 50000}

	if err := ValidatePlayerAddition(&team, nil, &position, nil, 5); err != nil {
		t.Fatalf("unexpected error hiring number 5: %v", err)
	}
	roster := []models.Player{activePlayer(5, position.ID, position.Cost)}

	// An injured player stays on the roster and holds their number until
	// they die or are released.
	roster[0].Status = models.PlayerStatusInjured
	if err := ValidatePlayerAddition(&team, roster, &position, nil, 5); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber while number 5 is injured, got %v", err)
	}

	// A free number remains hireable while the veteran recovers.
	if err := ValidatePlayerAddition(&team, roster, &position, nil, 6); err != nil {
		t.Fatalf("unexpected error hiring number 6: %v", err)
	}
}

func TestPositionLimitHoldsAcrossSuccessfulAdditions(t *testing.T) {
	team := testTeam(1000000)
	position := models.Position{ID: 7, Name: "Blitzer", Cost: 90000}
	limit := models.RacePositionLimit{RaceID: 1, PositionID: 7, MaxCount: 2}

	var roster []models.Player
	added := 0
	for number := 1; number <= 6; number++ {
		if err := ValidatePlayerAddition(&team, roster, &position, &limit, number); err != nil {
			if !errors.Is(err, ErrPositionLimitReached) {
				t.Fatalf("unexpected error on addition %d: %v", number, err)
			}
			continue
		}
		roster = append(roster, activePlayer(number, position.ID, position.Cost))
		team.Treasury -= position.Cost
		added++
	}

	if added != limit.MaxCount {
		t.Fatalf("expected exactly %d successful additions, got %d", limit.MaxCount, added)
	}
}

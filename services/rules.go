package services

import "bbmanager/models"

// Fixed upgrade economics. Costs are in gold pieces, caps per team.
const (
	ApothecaryValue  = 50000
	SupportStaffCost = 10000
	MaxTeamRerolls   = 8
	MaxSupportStaff  = 8

	MinPlayerNumber = 1
	MaxPlayerNumber = 16
)

// RerollCost returns the price of the team's next re-roll. Re-rolls bought
// after the team's first match cost double.
func RerollCost(team *models.Team) int {
	if team.TotalMatches() > 0 {
		return team.Race.RerollCost * 2
	}
	return team.Race.RerollCost
}

// TeamValue computes the team's CTV: the value of every active player plus
// the purchased upgrades. An unpersisted team is worth 0.
func TeamValue(team *models.Team, players []models.Player) int {
	if team.ID == 0 {
		return 0
	}

	total := 0
	for _, player := range players {
		if player.Status == models.PlayerStatusActive {
			total += player.Value
		}
	}

	total += team.TeamReRoll * team.Race.RerollCost
	if team.Apothecary {
		total += ApothecaryValue
	}
	total += team.AssistantCoaches * SupportStaffCost
	total += team.Cheerleaders * SupportStaffCost
	return total
}

// ValidatePlayerAddition checks whether a player of the given position with
// the proposed jersey number may be hired. It is a pure check: the caller is
// responsible for creating the player and debiting the treasury afterwards.
// A nil limit means the position is unconstrained for the team's race.
func ValidatePlayerAddition(team *models.Team, roster []models.Player, position *models.Position, limit *models.RacePositionLimit, number int) error {
	if number < MinPlayerNumber || number > MaxPlayerNumber {
		return ErrInvalidNumber
	}

	// Every rostered player holds their number, injured included; only
	// death or release frees it.
	for _, player := range roster {
		if player.Status != models.PlayerStatusDead && player.Number == number {
			return ErrDuplicateNumber
		}
	}

	if position.Cost > team.Treasury {
		return ErrInsufficientFunds
	}

	if limit != nil {
		count := 0
		for _, player := range roster {
			if player.Status == models.PlayerStatusActive && player.PositionID == position.ID {
				count++
			}
		}
		if count >= limit.MaxCount {
			return ErrPositionLimitReached
		}
	}

	return nil
}

// ApplyRerollPurchase debits the treasury and adds a re-roll when the team
// can afford one and is below the cap. It reports whether anything changed;
// a failed guard leaves the team untouched.
func ApplyRerollPurchase(team *models.Team) bool {
	cost := RerollCost(team)
	if team.TeamReRoll >= MaxTeamRerolls || team.Treasury < cost {
		return false
	}
	team.Treasury -= cost
	team.TeamReRoll++
	return true
}

// ApplyApothecaryPurchase hires an apothecary if the race allows one, the
// team does not already have one and can pay for it.
func ApplyApothecaryPurchase(team *models.Team) bool {
	if team.Apothecary || !team.Race.HasApothecary || team.Treasury < ApothecaryValue {
		return false
	}
	team.Treasury -= ApothecaryValue
	team.Apothecary = true
	return true
}

// ApplyAssistantCoachPurchase hires an assistant coach, up to the cap.
func ApplyAssistantCoachPurchase(team *models.Team) bool {
	if team.AssistantCoaches >= MaxSupportStaff || team.Treasury < SupportStaffCost {
		return false
	}
	team.Treasury -= SupportStaffCost
	team.AssistantCoaches++
	return true
}

// ApplyCheerleaderPurchase hires a cheerleader, up to the cap.
func ApplyCheerleaderPurchase(team *models.Team) bool {
	if team.Cheerleaders >= MaxSupportStaff || team.Treasury < SupportStaffCost {
		return false
	}
	team.Treasury -= SupportStaffCost
	team.Cheerleaders++
	return true
}

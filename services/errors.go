package services

import "errors"

// Validation and lookup errors surfaced to handlers. Roster checks report the
// first rule they trip; ledger purchases never report guard failures (a
// failed precondition is a no-op, matching the tabletop ledger sheet where an
// impossible purchase simply does not happen).
var (
	ErrInvalidNumber        = errors.New("invalid number: choose a number between 1 and 16")
	ErrDuplicateNumber      = errors.New("number already taken on this team")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPositionLimitReached = errors.New("position limit reached for this team")
	ErrTeamNotFound         = errors.New("team not found")
	ErrPositionNotFound     = errors.New("position not found")
	ErrRaceNotFound         = errors.New("race not found")
	ErrInvalidCredentials   = errors.New("invalid coach name or password")
	ErrCoachNameTaken       = errors.New("a coach with that name already exists")
	ErrInvalidResult        = errors.New("result must be win, loss or draw")
	ErrInvalidStatus        = errors.New("status must be active or injured")
	ErrPlayerNotRostered    = errors.New("player is not on this team")
)

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bbmanager/models"
	"bbmanager/services"

	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	rosterService *services.RosterService
	hub           *services.Hub
}

func NewRosterHandler(rosterService *services.RosterService, hub *services.Hub) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		hub:           hub,
	}
}

func (h *RosterHandler) CreatePlayer(c *gin.Context) {
	coachID, teamID, ok := teamRequestIDs(c)
	if !ok {
		return
	}

	var req services.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.rosterService.CreatePlayer(teamID, coachID, &req)
	if err != nil {
		c.JSON(rosterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastTeamUpdate(teamID, "player_hired", player)
	}

	c.JSON(http.StatusCreated, player)
}

func (h *RosterHandler) InjurePlayer(c *gin.Context) {
	h.setStatus(c, models.PlayerStatusInjured)
}

func (h *RosterHandler) HealPlayer(c *gin.Context) {
	h.setStatus(c, models.PlayerStatusActive)
}

func (h *RosterHandler) setStatus(c *gin.Context, status string) {
	coachID, teamID, playerID, ok := playerRequestIDs(c)
	if !ok {
		return
	}

	player, err := h.rosterService.SetPlayerStatus(teamID, coachID, playerID, status)
	if err != nil {
		c.JSON(rosterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastTeamUpdate(teamID, "player_status", player)
	}

	c.JSON(http.StatusOK, player)
}

func (h *RosterHandler) KillPlayer(c *gin.Context) {
	coachID, teamID, playerID, ok := playerRequestIDs(c)
	if !ok {
		return
	}

	player, err := h.rosterService.KillPlayer(teamID, coachID, playerID)
	if err != nil {
		c.JSON(rosterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastTeamUpdate(teamID, "player_died", player)
	}

	c.JSON(http.StatusOK, player)
}

func (h *RosterHandler) ReleasePlayer(c *gin.Context) {
	coachID, teamID, playerID, ok := playerRequestIDs(c)
	if !ok {
		return
	}

	player, err := h.rosterService.ReleasePlayer(teamID, coachID, playerID)
	if err != nil {
		c.JSON(rosterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastTeamUpdate(teamID, "player_released", player)
	}

	c.JSON(http.StatusOK, player)
}

func (h *RosterHandler) GetGraveyard(c *gin.Context) {
	coachID, teamID, ok := teamRequestIDs(c)
	if !ok {
		return
	}

	dead, err := h.rosterService.GetGraveyard(teamID, coachID)
	if err != nil {
		c.JSON(rosterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dead)
}

func playerRequestIDs(c *gin.Context) (coachID uint, teamID uint, playerID uint, ok bool) {
	coachID, teamID, ok = teamRequestIDs(c)
	if !ok {
		return 0, 0, 0, false
	}

	parsed, err := strconv.ParseUint(c.Param("playerID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return 0, 0, 0, false
	}

	return coachID, teamID, uint(parsed), true
}

func rosterErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPositionNotFound),
		errors.Is(err, services.ErrPlayerNotRostered):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidNumber),
		errors.Is(err, services.ErrDuplicateNumber),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrPositionLimitReached),
		errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

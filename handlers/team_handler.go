package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bbmanager/models"
	"bbmanager/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
	hub         *services.Hub
}

func NewTeamHandler(teamService *services.TeamService, hub *services.Hub) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		hub:         hub,
	}
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	coachID, exists := c.Get("coach_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Coach not authenticated"})
		return
	}

	var req services.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(coachID.(uint), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) GetCoachTeams(c *gin.Context) {
	coachID, exists := c.Get("coach_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Coach not authenticated"})
		return
	}

	teams, err := h.teamService.GetCoachTeams(coachID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) GetTeamByID(c *gin.Context) {
	coachID, teamID, ok := teamRequestIDs(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(teamID, coachID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) GetTeamSummary(c *gin.Context) {
	coachID, teamID, ok := teamRequestIDs(c)
	if !ok {
		return
	}

	summary, err := h.teamService.GetTeamSummary(teamID, coachID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Upgrade purchases share one shape: run the guarded debit, then broadcast
// the team state. A purchase whose guard failed returns the unchanged team
// with 200, the ledger's silent no-op contract.
func (h *TeamHandler) BuyReroll(c *gin.Context) {
	h.purchase(c, h.teamService.BuyReroll)
}

func (h *TeamHandler) BuyApothecary(c *gin.Context) {
	h.purchase(c, h.teamService.BuyApothecary)
}

func (h *TeamHandler) BuyAssistantCoach(c *gin.Context) {
	h.purchase(c, h.teamService.BuyAssistantCoach)
}

func (h *TeamHandler) BuyCheerleader(c *gin.Context) {
	h.purchase(c, h.teamService.BuyCheerleader)
}

func (h *TeamHandler) purchase(c *gin.Context, op func(teamID, coachID uint) (*models.Team, error)) {
	coachID, teamID, ok := teamRequestIDs(c)
	if !ok {
		return
	}

	team, err := op(teamID, coachID)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastTeamUpdate(team.ID, "team_update", team)
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) RecordMatchResult(c *gin.Context) {
	coachID, teamID, ok := teamRequestIDs(c)
	if !ok {
		return
	}

	var req services.RecordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.RecordMatchResult(teamID, coachID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastTeamUpdate(team.ID, "team_update", team)
	}

	c.JSON(http.StatusOK, team)
}

// teamRequestIDs pulls the authenticated coach and the :id route param,
// writing the error response itself when either is missing.
func teamRequestIDs(c *gin.Context) (coachID uint, teamID uint, ok bool) {
	id, exists := c.Get("coach_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Coach not authenticated"})
		return 0, 0, false
	}

	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return 0, 0, false
	}

	return id.(uint), uint(parsed), true
}

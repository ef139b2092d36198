package handlers

import (
	"net/http"
	"strconv"

	"bbmanager/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) GetRaces(c *gin.Context) {
	races, err := h.catalogService.GetRaces()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, races)
}

func (h *CatalogHandler) GetRaceByID(c *gin.Context) {
	raceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid race ID"})
		return
	}

	race, err := h.catalogService.GetRaceByID(uint(raceID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Race not found"})
		return
	}

	c.JSON(http.StatusOK, race)
}

func (h *CatalogHandler) GetRacePositions(c *gin.Context) {
	raceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid race ID"})
		return
	}

	limits, err := h.catalogService.GetPositionsForRace(uint(raceID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, limits)
}

func (h *CatalogHandler) GetSkillCategories(c *gin.Context) {
	categories, err := h.catalogService.GetSkillCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetTraits(c *gin.Context) {
	traits, err := h.catalogService.GetTraits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, traits)
}

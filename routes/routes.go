package routes

import (
	"log"
	"net/http"
	"strconv"

	"bbmanager/handlers"
	"bbmanager/middleware"
	"bbmanager/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	teamHandler *handlers.TeamHandler,
	rosterHandler *handlers.RosterHandler,
	hub *services.Hub,
	teamService *services.TeamService,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Catalog routes (public reference data)
		catalog := api.Group("/catalog")
		{
			catalog.GET("/races", catalogHandler.GetRaces)
			catalog.GET("/races/:id", catalogHandler.GetRaceByID)
			catalog.GET("/races/:id/positions", catalogHandler.GetRacePositions)
			catalog.GET("/skill-categories", catalogHandler.GetSkillCategories)
			catalog.GET("/traits", catalogHandler.GetTraits)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// Coach profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Team routes
			teams := protected.Group("/teams")
			{
				teams.GET("", teamHandler.GetCoachTeams)
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("/:id", teamHandler.GetTeamByID)
				teams.GET("/:id/summary", teamHandler.GetTeamSummary)

				// Team ledger
				teams.POST("/:id/rerolls", teamHandler.BuyReroll)
				teams.POST("/:id/apothecary", teamHandler.BuyApothecary)
				teams.POST("/:id/assistant-coaches", teamHandler.BuyAssistantCoach)
				teams.POST("/:id/cheerleaders", teamHandler.BuyCheerleader)
				teams.POST("/:id/matches", teamHandler.RecordMatchResult)

				// Roster
				teams.POST("/:id/players", rosterHandler.CreatePlayer)
				teams.POST("/:id/players/:playerID/injure", rosterHandler.InjurePlayer)
				teams.POST("/:id/players/:playerID/heal", rosterHandler.HealPlayer)
				teams.POST("/:id/players/:playerID/kill", rosterHandler.KillPlayer)
				teams.POST("/:id/players/:playerID/release", rosterHandler.ReleasePlayer)
				teams.GET("/:id/graveyard", rosterHandler.GetGraveyard)
			}
		}
	}

	// WebSocket endpoint for live team updates. Browsers can't set headers on
	// the upgrade request, so the token rides in a query parameter; the coach
	// identity comes from the token, never from the URL.
	router.GET("/ws/teams/:teamID", func(c *gin.Context) {
		teamID, err := strconv.ParseUint(c.Param("teamID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
			return
		}

		coachID, err := middleware.ParseCoachToken(jwtSecret, c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The connecting coach must own the team they want to watch.
		if _, err := teamService.GetTeamByID(uint(teamID), coachID); err != nil {
			log.Printf("WebSocket access denied for team %d, coach %d: %v", teamID, coachID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Team not found for this coach"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for team %d: %v", teamID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		hub.RegisterClient(conn, uint(teamID), coachID)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

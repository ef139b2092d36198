package main

import (
	"log"

	"bbmanager/config"
	"bbmanager/handlers"
	"bbmanager/middleware"
	"bbmanager/models"
	"bbmanager/routes"
	"bbmanager/seed"
	"bbmanager/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Coach{},
		&models.Skill{},
		&models.SkillCategory{},
		&models.Trait{},
		&models.Race{},
		&models.Position{},
		&models.RacePositionLimit{},
		&models.Team{},
		&models.Player{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load reference data fixtures when a seed directory is configured
	if cfg.SeedDir != "" {
		if err := seed.LoadAll(db, cfg.SeedDir); err != nil {
			log.Fatal("Failed to load seed data:", err)
		}
		log.Printf("Seed data loaded from %s", cfg.SeedDir)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	catalogService := services.NewCatalogService(db)
	teamService := services.NewTeamService(db, redisClient)
	rosterService := services.NewRosterService(db, teamService)

	// Initialize WebSocket hub
	hub := services.NewHub(teamService)
	go hub.Run()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	teamHandler := handlers.NewTeamHandler(teamService, hub)
	rosterHandler := handlers.NewRosterHandler(rosterService, hub)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, catalogHandler, teamHandler, rosterHandler, hub, teamService, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

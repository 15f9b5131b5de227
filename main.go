// main.go
package main

import (
	"embed"
	"log"

	"venue-booking/cmd"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/wire"
	"venue-booking/pkg/database"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if err := database.RunMigrations(migrationsFS, config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

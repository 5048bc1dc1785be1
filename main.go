package main

import (
	"log"

	"movie-tracker/cmd"
	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/wire"
	"movie-tracker/pkg/database"
	"movie-tracker/pkg/token"
	"movie-tracker/pkg/utils"

	"go.uber.org/zap"
)

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Upstream catalog client
	catalogClient := catalog.NewTMDBClient(
		config.TMDB.BaseURL,
		config.TMDB.APIKey,
		config.TMDB.Timeout(),
		logger,
	)

	// Token manager for stateless auth
	tokens := token.NewManager(config.JWT.Secret, config.JWT.Expiry())

	// Wire all dependencies
	app := wire.Wiring(repos, catalogClient, tokens, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}

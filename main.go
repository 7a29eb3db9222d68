// main.go
package main

import (
	"log"

	"clinic-backend/cmd"
	"clinic-backend/internal/classifier"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/wire"
	"clinic-backend/pkg/database"
	"clinic-backend/pkg/utils"

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

	// Sentiment classifier: real API when configured, log-only fallback otherwise
	var clf classifier.Classifier
	if config.Classifier.BaseURL != "" && config.Classifier.APIKey != "" {
		clf = classifier.NewOpenAIClassifier(config.Classifier, logger)
	} else {
		logger.Warn("Classifier API not configured, new reviews will be flagged for manual review")
		clf = classifier.NewMockClassifier(logger)
	}

	// Intake notifier: email via Resend when configured
	var notifier notify.Notifier
	if config.Notify.ResendAPIKey != "" {
		notifier = notify.NewResendNotifier(config.Notify, logger)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, clf, notifier, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

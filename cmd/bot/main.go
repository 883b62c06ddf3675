package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/diegoclair/slack-cooldown-bot/internal/config"
	"github.com/diegoclair/slack-cooldown-bot/internal/database"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/service"
	"github.com/diegoclair/slack-cooldown-bot/internal/handlers"
	"github.com/diegoclair/slack-cooldown-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.GameBotID == "" {
		log.Fatal("GAME_BOT_ID is required: the bot id of the game whose messages we watch")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)

	services := service.NewInstance(dm, slackClient, service.Options{
		GameBotID:      cfg.GameBotID,
		ErrorChannelID: cfg.ErrorChannelID,
	})

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(slackClient, services.Reminder, services.Settings, services.Classifier, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/events", handler.HandleEvents)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

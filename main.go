package main

import (
	"context"
	"log"

	api "taskboard-backend/cmd/api"
	authRepo "taskboard-backend/internal/auth/repository"
	"taskboard-backend/internal/domain"
	"taskboard-backend/internal/reminder/dispatcher"
	reminderRepo "taskboard-backend/internal/reminder/repository"
	"taskboard-backend/pkg/config"
	"taskboard-backend/pkg/database"
	"taskboard-backend/pkg/fcm"
	"taskboard-backend/pkg/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize FCM Client (optional, reminders are only stored without it)
	var sender fcm.Sender
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(context.Background(), cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			sender = fcmClient
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	cronService := scheduler.NewService(cfg.Location)
	reminderDispatcher := dispatcher.NewReminderDispatcher(
		reminderRepo.NewReminderRepository(db),
		authRepo.NewFCMTokenRepository(db),
		sender,
		cfg.Location,
	)
	if err := reminderDispatcher.Register(cronService, cfg.ReminderInterval); err != nil {
		log.Fatal("Failed to schedule reminders:", err)
	}
	cronService.Start()

	// Initialize HTTP handler
	handler, err := api.NewHandler(db, cfg)
	if err != nil {
		log.Fatal("Failed to initialize handlers:", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

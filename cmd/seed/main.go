package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mediconnect/mediconnect-api/internal/config"
	"github.com/mediconnect/mediconnect-api/internal/seed"
	"github.com/mediconnect/mediconnect-api/internal/store"
)

// One-shot job: wipe and repopulate the doctor and article collections.
// Not part of the running API.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := store.Connect(ctx, cfg.Mongo)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := seed.Run(ctx, db); err != nil {
		logrus.Fatalf("Error seeding database: %v", err)
	}

	logrus.Info("Database seeded successfully!")
}

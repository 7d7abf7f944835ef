package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/app"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/config"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/database"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/repositories"
)

// Standalone migrate-and-seed for provisioning a fresh database
// without starting the server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	fmt.Println("✓ Database connection successful")

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}
	fmt.Println("✓ AutoMigrate completed successfully")

	ctx := context.Background()
	testRepo := repositories.NewTestRepository(db)
	if err := app.SeedTests(ctx, testRepo, logger); err != nil {
		log.Fatalf("Failed to seed tests: %v", err)
	}

	count, err := testRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count tests: %v", err)
	}
	fmt.Printf("✓ Test catalogue ready (%d tests)\n", count)
}

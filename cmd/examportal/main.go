package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/app"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/config"
)

func main() {
	// Optional .env, matching how deployments inject PORT, JWT_SECRET,
	// EMAIL_USER and EMAIL_PASS.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal("app", zap.Error(err))
	}
}

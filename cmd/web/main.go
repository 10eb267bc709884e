package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"items-backend/internal/config"
	"items-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	log.Printf("🌍 Environment: %s", cfg.App.Environment)

	if err := Serve(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

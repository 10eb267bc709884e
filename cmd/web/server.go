package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"items-backend/internal/config"
	"items-backend/internal/shared/middleware"
	"items-backend/internal/web"
	"items-backend/pkg/server"
)

// SetupRouter wires the UI handlers onto a gin engine
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	client := web.NewClient(cfg.Web.APIBaseURL, cfg.Web.APITimeout)
	if err := web.NewHandler(client).Register(router); err != nil {
		return nil, err
	}

	return router, nil
}

// Serve runs the UI server until SIGINT or SIGTERM
func Serve(cfg *config.Config) error {
	router, err := SetupRouter(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := server.New(cfg.Web.Port, router, cfg.Web.APITimeout+5*time.Second)

	log.Printf("🖥️  UI starting on http://localhost:%s", cfg.Web.Port)
	log.Printf("🔗 Items API: %s", cfg.Web.APIBaseURL)

	return server.Run(srv)
}

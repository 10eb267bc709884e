package main

import (
	"fmt"
	"log"
	"time"

	"items-backend/internal/config"
	"items-backend/pkg/container"
	"items-backend/pkg/server"
)

// Serve builds the container, serves the items API and blocks until shutdown.
// The store is closed after the HTTP server has drained.
func Serve(cfg *config.Config) error {
	appContainer, err := container.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer appContainer.Cleanup()

	port := cfg.App.Port
	srv := server.New(port, SetupRouter(appContainer), 30*time.Second)

	log.Printf("🚀 Items API starting on http://localhost:%s", port)
	log.Printf("🗄️  Store: %s", cfg.Database.Driver)
	log.Printf("💚 Health Check: http://localhost:%s/api/health", port)
	log.Printf("📊 Export: http://localhost:%s/api/items/export", port)

	return server.Run(srv)
}

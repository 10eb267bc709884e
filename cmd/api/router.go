package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"items-backend/internal/infrastructure/database"
	"items-backend/internal/shared/middleware"
	"items-backend/pkg/cache"
	"items-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupItemRoutes(api, c)
	}

	return router
}

// ========================================
// ITEM ROUTES
// ========================================
func setupItemRoutes(api *gin.RouterGroup, c *container.Container) {
	items := api.Group("/items")
	{
		items.POST("", c.ItemHandler.Create)
		items.GET("", c.ItemHandler.List)
		items.GET("/export", c.ItemHandler.Export)
		items.GET("/:id", c.ItemHandler.GetByID)
		items.PUT("/:id", c.ItemHandler.Update)
		items.DELETE("/:id", c.ItemHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================

type healthReport struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Version   string         `json:"version"`
	Services  healthServices `json:"services"`
}

type healthServices struct {
	Database databaseHealth `json:"database"`
	Cache    string         `json:"cache"`
}

type databaseHealth struct {
	Status string              `json:"status"`
	Driver database.Driver     `json:"driver,omitempty"`
	Pool   *database.PoolStats `json:"pool,omitempty"`
}

// healthCheckHandler reports store and cache reachability.
// 503 when the store is down; a failing cache only degrades the report.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		var redisCache cache.Cache
		if appCtx.Cache != nil {
			redisCache = appCtx.Cache
		}

		report := healthReport{
			Status:    "ok",
			Timestamp: time.Now().Format(time.RFC3339),
			Version:   appCtx.Config.App.Version,
			Services: healthServices{
				Database: checkDatabase(ctx, appCtx.DB),
				Cache:    checkCache(ctx, redisCache),
			},
		}

		statusCode := http.StatusOK
		if report.Services.Database.Status != "ok" {
			report.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else if report.Services.Cache != "ok" && report.Services.Cache != "disabled" {
			report.Status = "degraded"
		}

		c.JSON(statusCode, report)
	}
}

func checkDatabase(ctx context.Context, db database.Store) databaseHealth {
	if db == nil {
		return databaseHealth{Status: "disconnected"}
	}

	stats := db.Stats()
	health := databaseHealth{Status: "ok", Driver: db.Driver(), Pool: &stats}
	if err := db.HealthCheck(ctx); err != nil {
		health.Status = fmt.Sprintf("error: %v", err)
	}
	return health
}

func checkCache(ctx context.Context, c cache.Cache) string {
	if c == nil {
		return "disabled"
	}
	if err := c.Ping(ctx); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return "ok"
}

package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"items-backend/internal/config"
	itemHandler "items-backend/internal/domains/item/handler"
	itemRepo "items-backend/internal/domains/item/repository"
	itemService "items-backend/internal/domains/item/service"
	infraCache "items-backend/internal/infrastructure/cache"
	"items-backend/internal/infrastructure/database"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process.
// It owns the store handle: opened once in Build, closed in Cleanup.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     database.Store
	Cache  *infraCache.RedisCache // nil when REDIS_ENABLED=false or Redis is unreachable

	// ========================================
	// ITEM DOMAIN
	// ========================================
	ItemRepo    itemRepo.Repository
	ItemService itemService.Service
	ItemHandler *itemHandler.ItemHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// Build creates the dependency graph from cfg.
// Order: infrastructure (DB, Cache) -> repositories -> services -> handlers.
func Build(cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE DATABASE
	// ========================================
	log.Printf("🗄️  Connecting to %s...", cfg.Database.Driver)

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 2: INITIALIZE CACHE (optional)
	// ========================================
	if cfg.Redis.Enabled {
		log.Println("🔴 Connecting to Redis...")

		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Connect(ctx); err != nil {
			// Redis failure is not critical - serve straight from the store
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
			_ = redisCache.Close()
		} else {
			c.Cache = redisCache
			log.Println("✅ Redis connected")
		}
	}

	// ========================================
	// STEP 3: REPOSITORIES / SERVICES / HANDLERS
	// ========================================
	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() error {
	switch db := c.DB.(type) {
	case *database.PostgresDB:
		c.ItemRepo = itemRepo.NewPostgresRepository(db.Pool)
	case *database.SQLDB:
		c.ItemRepo = itemRepo.NewSQLRepository(db.DB)
	default:
		return fmt.Errorf("no item repository for store %T", c.DB)
	}

	if c.Cache != nil {
		c.ItemRepo = itemRepo.NewCachedRepository(c.ItemRepo, c.Cache, c.Config.Redis.TTL)
	}

	return nil
}

func (c *Container) initServices() {
	c.ItemService = itemService.NewItemService(c.ItemRepo)
}

func (c *Container) initHandlers() {
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
}

// Cleanup releases resources on shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		} else {
			log.Println("✅ Database connections closed")
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}

package container

import (
	"context"
	"fmt"

	"bookong/internal/config"
	"bookong/internal/infrastructure/cache"
	"bookong/internal/infrastructure/database"
	"bookong/internal/shared/session"
	"bookong/pkg/logger"
	"bookong/pkg/token"

	bookHandler "bookong/internal/domains/book/handler"
	bookRepo "bookong/internal/domains/book/repository"
	bookService "bookong/internal/domains/book/service"
	dashboardHandler "bookong/internal/domains/dashboard/handler"
	dashboardService "bookong/internal/domains/dashboard/service"
	"bookong/internal/domains/user"
	userHandler "bookong/internal/domains/user/handler"
	userRepo "bookong/internal/domains/user/repository"
	userService "bookong/internal/domains/user/service"
	warehouseHandler "bookong/internal/domains/warehouse/handler"
	warehouseRepo "bookong/internal/domains/warehouse/repository"
	warehouseService "bookong/internal/domains/warehouse/service"
)

// Container wires the whole dependency graph: config, infrastructure,
// repositories, services, handlers. Everything in here is a singleton
// living for the lifetime of the process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient

	Sessions session.Store
	Tokens   *token.Manager

	WarehouseRepo warehouseRepo.Repository
	BookRepo      bookRepo.RepositoryInterface
	UserRepo      user.Repository

	WarehouseService warehouseService.WarehouseServiceInterface
	BookService      bookService.BookServiceInterface
	ImportService    bookService.ImportServiceInterface
	DashboardService dashboardService.DashboardServiceInterface
	UserService      user.Service

	AuthHandler      *userHandler.AuthHandler
	WarehouseHandler *warehouseHandler.WarehouseHandler
	BookHandler      *bookHandler.BookHandler
	ImportHandler    *bookHandler.ImportHandler
	DashboardHandler *dashboardHandler.DashboardHandler
}

// NewContainer builds the dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := c.DB.Sync(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to sync schema: %w", err)
	}

	// Redis is preferred for sessions but not required: without it
	// sessions live in process memory and die with the process.
	c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		logger.Info("Redis unavailable, using in-memory sessions", map[string]interface{}{
			"error": err.Error(),
		})
		c.Redis = nil
		c.Sessions = session.NewMemoryStore()
	} else {
		c.Sessions = session.NewRedisStore(c.Redis.Client)
	}

	c.Tokens = token.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	c.WarehouseRepo = warehouseRepo.NewRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)

	c.WarehouseService = warehouseService.NewWarehouseService(c.WarehouseRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.WarehouseRepo)
	c.ImportService = bookService.NewImportService(c.BookRepo, c.WarehouseRepo)
	c.DashboardService = dashboardService.NewDashboardService(c.BookRepo, c.WarehouseRepo)
	c.UserService = userService.NewUserService(c.UserRepo)

	if err := c.UserService.EnsureDefaultAdmin(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	c.AuthHandler = userHandler.NewAuthHandler(c.UserService, c.Sessions, c.Tokens, cfg.Session, cfg.App.Environment)
	c.WarehouseHandler = warehouseHandler.NewWarehouseHandler(c.WarehouseService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.WarehouseService)
	c.ImportHandler = bookHandler.NewImportHandler(c.ImportService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)

	logger.Info("Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// HealthCheck pings the backing stores.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if c.Redis != nil {
		if err := c.Redis.HealthCheck(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Cleanup releases infrastructure connections. Safe to call once
// during shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container cleaned up", nil)
}

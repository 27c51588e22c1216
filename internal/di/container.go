// Package di wires the application modules together and manages their
// lifecycle.
package di

import (
	"context"
	"fmt"
	"sync"

	"ot-inventory/internal/auth"
	authconfig "ot-inventory/internal/auth/config"
	"ot-inventory/internal/inventory"
	inventoryconfig "ot-inventory/internal/inventory/config"
	"ot-inventory/internal/shared/eventbus"
	"ot-inventory/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container owns the application modules and their shared infrastructure:
// the Mongo database, the Redis client, the event bus, and the logger.
type Container struct {
	mu sync.RWMutex

	AuthModule      *auth.AuthModule
	InventoryModule *inventory.InventoryModule

	MongoDB     *mongo.Database
	RedisClient *redis.Client
	EventBus    eventbus.EventBusInterface

	AuthConfig      *authconfig.Config
	InventoryConfig *inventoryconfig.Config

	Logger logger.Logger
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		EventBus: eventbus.NewEventBus(nil),
	}
}

// InitializeAuth initializes the authentication module.
func (c *Container) InitializeAuth(mongoDB *mongo.Database, cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.AuthConfig = cfg

	authModule, err := auth.NewAuthModule(mongoDB, cfg)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeInventory initializes the inventory module. The auth module must
// be initialized first because the inventory routes sit behind its
// middleware.
func (c *Container) InitializeInventory(cfg *inventoryconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before the inventory module")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before the inventory module")
	}

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}

	c.InventoryConfig = cfg
	c.RedisClient = inventoryconfig.NewRedisClient(&cfg.Redis)

	inventoryModule, err := inventory.NewInventoryModule(
		c.MongoDB,
		c.RedisClient,
		c.EventBus,
		c.AuthModule.GetMiddleware(),
		cfg,
		c.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create inventory module: %w", err)
	}

	c.InventoryModule = inventoryModule
	return nil
}

// GetAuthModule returns the auth module instance.
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetInventoryModule returns the inventory module instance.
func (c *Container) GetInventoryModule() *inventory.InventoryModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.InventoryModule
}

// HealthCheck pings the container's backing services.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB != nil {
		if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}

	return nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error

	if c.InventoryModule != nil {
		if err := c.InventoryModule.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

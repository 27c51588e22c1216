// Package inventory wires the inventory records module: item and scheduling
// usecases, Mongo repositories, the Redis stock-event stream, and the
// protected HTTP surface.
package inventory

import (
	"fmt"

	authhttp "ot-inventory/internal/auth/adapter/http"
	inventoryhttp "ot-inventory/internal/inventory/adapter/http"
	"ot-inventory/internal/inventory/adapter/persistence"
	"ot-inventory/internal/inventory/adapter/persistence/mongodb"
	"ot-inventory/internal/inventory/config"
	"ot-inventory/internal/inventory/usecase"
	"ot-inventory/internal/shared/eventbus"
	"ot-inventory/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// InventoryModule represents the complete inventory records module.
type InventoryModule struct {
	inventoryUC  usecase.InventoryUsecaseInterface
	schedulingUC usecase.SchedulingUsecaseInterface

	itemHandler       *inventoryhttp.InventoryHTTPHandler
	schedulingHandler *inventoryhttp.SchedulingHTTPHandler
	watchHandler      *inventoryhttp.StockWatchHandler

	authMiddleware *authhttp.AuthMiddleware
	config         *config.Config
}

// NewInventoryModule creates the inventory module. The auth middleware guards
// every route the module registers.
func NewInventoryModule(
	db *mongo.Database,
	redisClient *redis.Client,
	bus eventbus.EventBusInterface,
	authMiddleware *authhttp.AuthMiddleware,
	cfg *config.Config,
	log logger.Logger,
) (*InventoryModule, error) {
	itemRepo, err := mongodb.NewMongoItemRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}

	operationRepo, err := mongodb.NewMongoOperationRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation repository: %w", err)
	}

	patientRepo := mongodb.NewMongoPatientRepository(db)
	providerRepo := mongodb.NewMongoProviderRepository(db)

	eventStore := persistence.NewRedisStockEventStore(
		redisClient,
		cfg.Redis.StockEventStream,
		cfg.Redis.StreamMaxLength,
		log.WithComponent("stock_event_store"),
	)

	inventoryUC := usecase.NewInventoryUsecase(itemRepo, eventStore, bus, log)
	schedulingUC := usecase.NewSchedulingUsecase(operationRepo, patientRepo, providerRepo, bus, log)

	return &InventoryModule{
		inventoryUC:       inventoryUC,
		schedulingUC:      schedulingUC,
		itemHandler:       inventoryhttp.NewInventoryHTTPHandler(inventoryUC, log),
		schedulingHandler: inventoryhttp.NewSchedulingHTTPHandler(schedulingUC, log),
		watchHandler:      inventoryhttp.NewStockWatchHandler(bus, log),
		authMiddleware:    authMiddleware,
		config:            cfg,
	}, nil
}

// RegisterRoutes mounts the protected inventory surface under
// /api/v1/inventory.
func (m *InventoryModule) RegisterRoutes(router fiber.Router) {
	group := router.Group("/api/v1/inventory", m.authMiddleware.Protect())
	m.itemHandler.RegisterRoutes(group)
	m.schedulingHandler.RegisterRoutes(group)
	m.watchHandler.RegisterRoutes(group)
}

// GetInventoryUsecase returns the item usecase for external access.
func (m *InventoryModule) GetInventoryUsecase() usecase.InventoryUsecaseInterface {
	return m.inventoryUC
}

// GetSchedulingUsecase returns the scheduling usecase for external access.
func (m *InventoryModule) GetSchedulingUsecase() usecase.SchedulingUsecaseInterface {
	return m.schedulingUC
}

// Stop performs cleanup when the module is shut down.
func (m *InventoryModule) Stop() error {
	return nil
}

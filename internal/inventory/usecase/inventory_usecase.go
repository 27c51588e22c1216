// Package usecase implements the inventory business rules: item lifecycle,
// stock adjustments with an audit trail, and scheduling records.
package usecase

import (
	"context"
	"strings"
	"time"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/shared/errors"
	"ot-inventory/internal/shared/eventbus"
	"ot-inventory/internal/shared/logger"
	"ot-inventory/internal/shared/utils"

	"github.com/google/uuid"
)

// CreateItemRequest carries the fields needed to register a new item.
type CreateItemRequest struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	MinimumQuantity int        `json:"minimum_quantity"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	Category        string     `json:"category"`
	Supplier        string     `json:"supplier"`
	SerialNumber    string     `json:"serial_number"`
	Location        string     `json:"location"`
	IsConsumable    bool       `json:"is_consumable"`
}

// UpdateItemRequest carries the mutable item fields. Stock changes go through
// AdjustStock, not here.
type UpdateItemRequest struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	UnitPrice       float64    `json:"unit_price"`
	MinimumQuantity int        `json:"minimum_quantity"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	Category        string     `json:"category"`
	Supplier        string     `json:"supplier"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`
}

// AdjustStockRequest moves stock in or out of an item.
type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// InventoryUsecaseInterface is the item-facing port the HTTP layer depends on.
type InventoryUsecaseInterface interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*model.InventoryItem, error)
	GetItem(ctx context.Context, id string) (*model.InventoryItem, error)
	ListItems(ctx context.Context, filter repository.ItemFilter) ([]*model.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*model.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, itemID string, req AdjustStockRequest) (*model.InventoryItem, error)
	RecentStockEvents(ctx context.Context, limit int64) ([]model.StockEvent, error)
}

// InventoryUsecase implements InventoryUsecaseInterface on top of the item
// repository, the stock-event audit store, and the in-process event bus.
type InventoryUsecase struct {
	items  repository.ItemRepository
	events repository.StockEventStore
	bus    eventbus.EventBusInterface
	logger logger.Logger
}

// NewInventoryUsecase creates the inventory usecase.
func NewInventoryUsecase(
	items repository.ItemRepository,
	events repository.StockEventStore,
	bus eventbus.EventBusInterface,
	log logger.Logger,
) *InventoryUsecase {
	return &InventoryUsecase{
		items:  items,
		events: events,
		bus:    bus,
		logger: log.WithComponent("inventory_usecase"),
	}
}

// CreateItem validates and stores a new inventory item.
func (uc *InventoryUsecase) CreateItem(ctx context.Context, req CreateItemRequest) (*model.InventoryItem, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Type) == "" {
		return nil, errors.NewValidationError("item name and type are required")
	}
	if req.Quantity < 0 || req.MinimumQuantity < 0 {
		return nil, errors.NewValidationError("quantities cannot be negative")
	}

	now := time.Now()
	item := &model.InventoryItem{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		MinimumQuantity: req.MinimumQuantity,
		ExpiryDate:      req.ExpiryDate,
		Category:        req.Category,
		Supplier:        req.Supplier,
		SerialNumber:    req.SerialNumber,
		Location:        req.Location,
		Status:          model.ItemStatusAvailable,
		IsConsumable:    req.IsConsumable,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if item.Quantity == 0 {
		item.Status = model.ItemStatusOutOfStock
	}

	if err := uc.items.Create(ctx, item); err != nil {
		uc.logger.WithContext(ctx).Errorf("Failed to create item: %v", err)
		return nil, err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEvent(eventbus.EventTypeItemCreated, item))
	return item, nil
}

// GetItem returns one item by ID.
func (uc *InventoryUsecase) GetItem(ctx context.Context, id string) (*model.InventoryItem, error) {
	return uc.items.GetByID(ctx, id)
}

// ListItems returns items matching the filter.
func (uc *InventoryUsecase) ListItems(ctx context.Context, filter repository.ItemFilter) ([]*model.InventoryItem, error) {
	return uc.items.List(ctx, filter)
}

// UpdateItem applies the mutable fields to an existing item. Quantity is
// untouched; stock moves only through AdjustStock so every change is audited.
func (uc *InventoryUsecase) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*model.InventoryItem, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) != "" {
		item.Name = req.Name
	}
	item.Description = req.Description
	if req.UnitPrice > 0 {
		item.UnitPrice = req.UnitPrice
	}
	if req.MinimumQuantity >= 0 {
		item.MinimumQuantity = req.MinimumQuantity
	}
	if req.ExpiryDate != nil {
		item.ExpiryDate = req.ExpiryDate
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Supplier != "" {
		item.Supplier = req.Supplier
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Status != "" {
		item.Status = req.Status
	}
	item.UpdatedAt = time.Now()

	if err := uc.items.Update(ctx, item); err != nil {
		uc.logger.WithContext(ctx).Errorf("Failed to update item %s: %v", id, err)
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item.
func (uc *InventoryUsecase) DeleteItem(ctx context.Context, id string) error {
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEvent(eventbus.EventTypeItemDeleted, id))
	return nil
}

// AdjustStock moves stock by delta and records the movement. Negative deltas
// may not take quantity below zero. The resulting event carries the low-stock
// flag so dashboards can alert on quantities at or below the reorder
// threshold.
func (uc *InventoryUsecase) AdjustStock(ctx context.Context, itemID string, req AdjustStockRequest) (*model.InventoryItem, error) {
	if req.Delta == 0 {
		return nil, errors.ErrInvalidAdjustment
	}

	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	newQuantity := item.Quantity + req.Delta
	if newQuantity < 0 {
		return nil, errors.ErrInsufficientStock
	}

	item.Quantity = newQuantity
	if newQuantity == 0 {
		item.Status = model.ItemStatusOutOfStock
	} else if item.Status == model.ItemStatusOutOfStock {
		item.Status = model.ItemStatusAvailable
	}
	item.UpdatedAt = time.Now()

	if err := uc.items.Update(ctx, item); err != nil {
		uc.logger.WithContext(ctx).Errorf("Failed to persist stock adjustment for %s: %v", itemID, err)
		return nil, err
	}

	actorID := utils.GetUserIDOrDefault(ctx, "")
	event := model.StockEvent{
		ID:         uuid.New().String(),
		ItemID:     item.ID,
		ItemName:   item.Name,
		Delta:      req.Delta,
		Quantity:   item.Quantity,
		Reason:     req.Reason,
		ActorID:    actorID,
		LowStock:   item.IsLowStock(),
		OccurredAt: time.Now(),
	}

	if err := uc.events.Append(ctx, event); err != nil {
		// The adjustment is committed; a failed audit append is logged, not
		// surfaced to the caller.
		uc.logger.WithContext(ctx).Errorf("Failed to append stock event for %s: %v", itemID, err)
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEvent(eventbus.EventTypeStockAdjusted, event))
	if event.LowStock {
		uc.bus.PublishAndForget(ctx, eventbus.NewBasicEvent(eventbus.EventTypeStockLow, event))
	}

	return item, nil
}

// RecentStockEvents returns the latest audit entries, newest first.
func (uc *InventoryUsecase) RecentStockEvents(ctx context.Context, limit int64) ([]model.StockEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.events.Recent(ctx, limit)
}

var _ InventoryUsecaseInterface = (*InventoryUsecase)(nil)

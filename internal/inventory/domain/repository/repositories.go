// Package repository defines the persistence ports for inventory records.
package repository

import (
	"context"

	"ot-inventory/internal/inventory/domain/model"
)

// ItemFilter narrows item listings. Zero values mean no filtering.
type ItemFilter struct {
	Type     string
	Status   string
	LowStock bool
}

// ItemRepository persists inventory items.
type ItemRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	GetByID(ctx context.Context, id string) (*model.InventoryItem, error)
	List(ctx context.Context, filter ItemFilter) ([]*model.InventoryItem, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

// OperationRepository persists scheduled procedures.
type OperationRepository interface {
	Create(ctx context.Context, op *model.Operation) error
	GetByID(ctx context.Context, id string) (*model.Operation, error)
	List(ctx context.Context) ([]*model.Operation, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PatientRepository persists patients.
type PatientRepository interface {
	Create(ctx context.Context, p *model.Patient) error
	GetByID(ctx context.Context, id string) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
}

// ProviderRepository persists providers.
type ProviderRepository interface {
	Create(ctx context.Context, p *model.Provider) error
	GetByID(ctx context.Context, id string) (*model.Provider, error)
	List(ctx context.Context) ([]*model.Provider, error)
}

// StockEventStore is the audit trail for stock adjustments.
type StockEventStore interface {
	Append(ctx context.Context, event model.StockEvent) error
	Recent(ctx context.Context, limit int64) ([]model.StockEvent, error)
}

// Package model defines the inventory records the operating-theater dashboard
// works with.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item types.
const (
	ItemTypeEquipment  = "Equipment"
	ItemTypeInstrument = "Instrument"
	ItemTypeDisposable = "Disposable"
	ItemTypeMedicine   = "Medicine"
)

// Item statuses.
const (
	ItemStatusAvailable  = "Available"
	ItemStatusOutOfStock = "Out of Stock"
	ItemStatusRetired    = "Retired"
)

// InventoryItem is a stocked item: equipment, an instrument, a disposable, or
// a medicine.
type InventoryItem struct {
	ID              string             `json:"id" bson:"id"`
	ObjectID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Type            string             `json:"type" bson:"type"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	UnitPrice       float64            `json:"unit_price" bson:"unit_price"`
	MinimumQuantity int                `json:"minimum_quantity" bson:"minimum_quantity"`
	ExpiryDate      *time.Time         `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	Category        string             `json:"category,omitempty" bson:"category,omitempty"`
	Supplier        string             `json:"supplier,omitempty" bson:"supplier,omitempty"`
	SerialNumber    string             `json:"serial_number,omitempty" bson:"serial_number,omitempty"`
	Location        string             `json:"location,omitempty" bson:"location,omitempty"`
	Status          string             `json:"status" bson:"status"`
	IsConsumable    bool               `json:"is_consumable" bson:"is_consumable"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsLowStock reports whether the quantity has fallen to or below the
// reorder threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinimumQuantity
}

package models

import "time"

// InventoryItem is a stocked product or injectable.
type InventoryItem struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Category     string     `bson:"category" json:"category"`
	Quantity     int        `bson:"quantity" json:"quantity"`
	ReorderLevel int        `bson:"reorder_level" json:"reorder_level"`
	UnitCost     float64    `bson:"unit_cost" json:"unit_cost"`
	ExpiresAt    *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// LowStock reports whether the item is at or below its reorder level.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

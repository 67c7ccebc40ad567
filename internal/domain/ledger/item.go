// Package ledger holds the append-only transaction model the analytics
// engine is computed from: Items and Vendors as reference entities, and
// Purchases and Usages as the ledger itself. Entities are created and
// mutated by the surrounding application; the engine only reads them.
package ledger

import (
	"strings"

	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared/valueobject"
)

// Item represents a consumable tracked by the inventory ledger.
// It owns its Purchases and Usages: deleting an Item deletes both.
type Item struct {
	shared.BaseEntity
	Name         string
	Unit         valueobject.UnitOfMeasure
	ReorderLevel int64 // stock threshold at or below which the item needs reordering
	Perishable   bool
	Notes        string
}

// NewItem creates a new Item
func NewItem(name string, unit valueobject.UnitOfMeasure, reorderLevel int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if !unit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unknown unit of measure")
	}
	if reorderLevel < 0 {
		return nil, shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}

	return &Item{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Unit:         unit,
		ReorderLevel: reorderLevel,
	}, nil
}

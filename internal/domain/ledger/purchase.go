package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Purchase is a single lot entering the ledger. It belongs to exactly one
// Item and optionally references a Vendor. UsedQuantity tracks how much of
// this specific lot has been consumed; it is independent of the item-level
// stock arithmetic and is only used for expiration reporting.
type Purchase struct {
	shared.BaseEntity
	ItemID         uuid.UUID
	VendorID       *uuid.UUID
	Date           time.Time
	Quantity       int64
	PricePerUnit   decimal.Decimal
	LotNumber      string
	ExpirationDate *time.Time
	Notes          string
	UsedQuantity   int64
}

// NewPurchase creates a new Purchase for an item
func NewPurchase(itemID uuid.UUID, date time.Time, quantity int64, pricePerUnit decimal.Decimal) (*Purchase, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}

	return &Purchase{
		BaseEntity:   shared.NewBaseEntity(),
		ItemID:       itemID,
		Date:         date,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
	}, nil
}

// RemainingQuantity returns how much of this lot has not been consumed yet
func (p *Purchase) RemainingQuantity() int64 {
	return p.Quantity - p.UsedQuantity
}

// HasExpirationDate returns true if an expiration date is set
func (p *Purchase) HasExpirationDate() bool {
	return p.ExpirationDate != nil
}

package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared"
)

// Usage records consumption of an item. Usage is not attributed to a
// specific purchase lot; it only affects the item-level stock arithmetic.
type Usage struct {
	shared.BaseEntity
	ItemID    uuid.UUID
	Date      time.Time
	Quantity  int64
	Notes     string
	Estimated bool // quantity is an estimate rather than a precise count
}

// NewUsage creates a new Usage record for an item
func NewUsage(itemID uuid.UUID, date time.Time, quantity int64) (*Usage, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &Usage{
		BaseEntity: shared.NewBaseEntity(),
		ItemID:     itemID,
		Date:       date,
		Quantity:   quantity,
	}, nil
}

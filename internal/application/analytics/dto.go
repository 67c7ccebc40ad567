package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemMetricsDTO is the pull-based per-item view-model the surrounding
// application renders. Pointer fields distinguish "undefined" from zero:
// a nil DaysUntilReorder means there is no usage basis to forecast from,
// while zero means reorder now.
type ItemMetricsDTO struct {
	ItemID           uuid.UUID          `json:"item_id"`
	Name             string             `json:"name"`
	Unit             string             `json:"unit"`
	UnitAbbreviation string             `json:"unit_abbreviation"`
	CurrentInventory int64              `json:"current_inventory"`
	ReorderLevel     int64              `json:"reorder_level"`
	NeedsReorder     bool               `json:"needs_reorder"`
	UsageRatePerDay  decimal.Decimal    `json:"usage_rate_per_day"`
	DaysUntilReorder *int64             `json:"days_until_reorder,omitempty"`
	LowestPrice      *decimal.Decimal   `json:"lowest_price,omitempty"`
	AveragePrice     *decimal.Decimal   `json:"average_price,omitempty"`
	VendorPrices     []VendorPriceDTO   `json:"vendor_prices"`
}

// VendorPriceDTO is one row of the cheapest-first vendor ranking
type VendorPriceDTO struct {
	VendorID   uuid.UUID       `json:"vendor_id"`
	VendorName string          `json:"vendor_name"`
	Price      decimal.Decimal `json:"price"`
}

// ExpiringLotDTO is one row of the expiring-soon report
type ExpiringLotDTO struct {
	ItemID           uuid.UUID `json:"item_id"`
	ItemName         string    `json:"item_name"`
	PurchaseID       uuid.UUID `json:"purchase_id"`
	LotNumber        string    `json:"lot_number,omitempty"`
	ExpirationDate   time.Time `json:"expiration_date"`
	RemainingQty     int64     `json:"remaining_quantity"`
	DaysLeft         int       `json:"days_left"`
	ExpirationStatus string    `json:"expiration_status"`
}

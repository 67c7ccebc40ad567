// Package analytics wires the domain-level aggregator and duplicate
// detector into the services the surrounding application calls: a
// synchronous dashboard view-model builder and an asynchronous duplicate
// scan scheduler.
package analytics

import (
	"time"

	"github.com/google/uuid"
	domain "github.com/joshuaswanson/inventory-tracker/internal/domain/analytics"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/ledger"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared/valueobject"
)

// DefaultExpiringLookaheadDays is the lookahead window used when the
// caller passes zero to ExpiringSoon
const DefaultExpiringLookaheadDays = 30

// SnapshotSource supplies the current ledger snapshot on demand. The
// surrounding application owns the collections and rebuilds the snapshot
// when they change.
type SnapshotSource interface {
	Snapshot() *ledger.Snapshot
}

// DashboardService builds read-only view-models from the ledger. Every
// call recomputes from the current snapshot; nothing is cached.
type DashboardService struct {
	source        SnapshotSource
	nowFn         func() time.Time
	lookaheadDays int
}

// DashboardOption is a functional option for configuring the service
type DashboardOption func(*DashboardService)

// WithDashboardClock sets the current-time source used for date-relative
// metrics. Defaults to time.Now.
func WithDashboardClock(nowFn func() time.Time) DashboardOption {
	return func(s *DashboardService) {
		s.nowFn = nowFn
	}
}

// WithExpiringLookaheadDays sets the default expiring-soon window
func WithExpiringLookaheadDays(days int) DashboardOption {
	return func(s *DashboardService) {
		if days > 0 {
			s.lookaheadDays = days
		}
	}
}

// NewDashboardService creates a DashboardService over the given source
func NewDashboardService(source SnapshotSource, opts ...DashboardOption) *DashboardService {
	s := &DashboardService{
		source:        source,
		nowFn:         time.Now,
		lookaheadDays: DefaultExpiringLookaheadDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ItemMetrics returns the derived metrics view-model for one item
func (s *DashboardService) ItemMetrics(itemID uuid.UUID) (*ItemMetricsDTO, error) {
	snapshot := s.source.Snapshot()
	item := snapshot.ItemByID(itemID)
	if item == nil {
		return nil, shared.ErrNotFound
	}

	agg := domain.NewAggregator(snapshot)
	dto := &ItemMetricsDTO{
		ItemID:           item.ID,
		Name:             item.Name,
		Unit:             item.Unit.String(),
		UnitAbbreviation: item.Unit.Abbreviation(),
		CurrentInventory: agg.CurrentInventory(item),
		ReorderLevel:     item.ReorderLevel,
		NeedsReorder:     agg.NeedsReorder(item),
		UsageRatePerDay:  agg.UsageRatePerDay(item),
	}

	if days, ok := agg.EstimatedDaysUntilReorder(item); ok {
		dto.DaysUntilReorder = &days
	}
	if lowest, ok := agg.LowestPricePaid(item); ok {
		dto.LowestPrice = &lowest
	}
	if avg, ok := agg.AveragePricePaid(item); ok {
		dto.AveragePrice = &avg
	}

	ranking := agg.LowestPriceByVendor(item)
	dto.VendorPrices = make([]VendorPriceDTO, 0, len(ranking))
	for _, vp := range ranking {
		dto.VendorPrices = append(dto.VendorPrices, VendorPriceDTO{
			VendorID:   vp.Vendor.ID,
			VendorName: vp.Vendor.Name,
			Price:      vp.Price,
		})
	}

	return dto, nil
}

// ExpiringSoon returns the forward-looking expiring-lot report, soonest
// first. A non-positive days argument falls back to the configured default
// window.
func (s *DashboardService) ExpiringSoon(days int) []ExpiringLotDTO {
	if days <= 0 {
		days = s.lookaheadDays
	}

	now := s.nowFn()
	snapshot := s.source.Snapshot()
	lots := domain.ExpiringWithin(snapshot, days, now)

	report := make([]ExpiringLotDTO, 0, len(lots))
	for _, lot := range lots {
		report = append(report, ExpiringLotDTO{
			ItemID:           lot.Item.ID,
			ItemName:         lot.Item.Name,
			PurchaseID:       lot.Purchase.ID,
			LotNumber:        lot.Purchase.LotNumber,
			ExpirationDate:   *lot.Purchase.ExpirationDate,
			RemainingQty:     lot.Purchase.RemainingQuantity(),
			DaysLeft:         lot.DaysLeft,
			ExpirationStatus: domain.StatusOf(lot.Purchase, now).String(),
		})
	}
	return report
}

// TotalValue returns the total inventory value across all items in the
// snapshot
func (s *DashboardService) TotalValue() valueobject.Money {
	snapshot := s.source.Snapshot()
	return domain.NewAggregator(snapshot).TotalInventoryValue(snapshot.Items)
}

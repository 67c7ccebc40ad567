package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/ledger"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Aggregator answers per-item queries against a ledger snapshot. Queries
// are linear in the item's own purchase and usage counts and recompute on
// every call; per-item ledgers are small enough that memoization would buy
// nothing worth the staleness risk.
type Aggregator struct {
	snapshot *ledger.Snapshot
}

// NewAggregator creates an Aggregator over the given snapshot
func NewAggregator(snapshot *ledger.Snapshot) *Aggregator {
	return &Aggregator{snapshot: snapshot}
}

// CurrentInventory returns total purchased quantity minus total used
// quantity across the item's full history. The value may be negative when
// recorded usage exceeds recorded purchases; that is surfaced as-is rather
// than clamped, so callers can treat it as a data-entry error state.
func (a *Aggregator) CurrentInventory(item *ledger.Item) int64 {
	var total int64
	for _, p := range a.snapshot.PurchasesForItem(item.ID) {
		total += p.Quantity
	}
	for _, u := range a.snapshot.UsagesForItem(item.ID) {
		total -= u.Quantity
	}
	return total
}

// NeedsReorder returns true if current inventory is at or below the item's
// reorder level
func (a *Aggregator) NeedsReorder(item *ledger.Item) bool {
	return a.CurrentInventory(item) <= item.ReorderLevel
}

// UsageRatePerDay returns the whole-history average consumption per day.
// With no usage records the rate is zero. When the earliest and latest
// usage fall within the same elapsed day, the total quantity is treated as
// consumed within one day.
func (a *Aggregator) UsageRatePerDay(item *ledger.Item) decimal.Decimal {
	usages := a.snapshot.UsagesForItem(item.ID)
	if len(usages) == 0 {
		return decimal.Zero
	}

	earliest, latest := usages[0].Date, usages[0].Date
	var total int64
	for _, u := range usages {
		total += u.Quantity
		if u.Date.Before(earliest) {
			earliest = u.Date
		}
		if u.Date.After(latest) {
			latest = u.Date
		}
	}

	elapsedDays := int64(math.Floor(latest.Sub(earliest).Hours() / 24))
	if elapsedDays <= 0 {
		return decimal.NewFromInt(total)
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(elapsedDays))
}

// UsageRateOver returns the average consumption per day over the trailing
// overDays window ending at now. The divisor is always overDays, whether or
// not usage covers the whole window.
func (a *Aggregator) UsageRateOver(item *ledger.Item, overDays int, now time.Time) decimal.Decimal {
	if overDays <= 0 {
		return decimal.Zero
	}

	cutoff := now.AddDate(0, 0, -overDays)
	var total int64
	for _, u := range a.snapshot.UsagesForItem(item.ID) {
		if !u.Date.Before(cutoff) {
			total += u.Quantity
		}
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(overDays)))
}

// EstimatedDaysUntilReorder forecasts how many days remain until the item
// reaches its reorder level at the whole-history usage rate. ok is false
// when there is no usage basis to forecast from; zero means reorder now.
// The distinction matters: zero is actionable, false is "unknown".
func (a *Aggregator) EstimatedDaysUntilReorder(item *ledger.Item) (int64, bool) {
	rate := a.UsageRatePerDay(item)
	if rate.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}

	headroom := a.CurrentInventory(item) - item.ReorderLevel
	if headroom <= 0 {
		return 0, true
	}
	return decimal.NewFromInt(headroom).Div(rate).Floor().IntPart(), true
}

// LowestPricePaid returns the minimum price per unit across the item's
// purchases. ok is false when the item has no purchase history.
func (a *Aggregator) LowestPricePaid(item *ledger.Item) (decimal.Decimal, bool) {
	p := a.LowestPricePurchase(item)
	if p == nil {
		return decimal.Zero, false
	}
	return p.PricePerUnit, true
}

// LowestPricePurchase returns the purchase with the minimum price per unit,
// or nil when the item has no purchases. The earliest-seen purchase wins
// ties.
func (a *Aggregator) LowestPricePurchase(item *ledger.Item) *ledger.Purchase {
	var best *ledger.Purchase
	for _, p := range a.snapshot.PurchasesForItem(item.ID) {
		if best == nil || p.PricePerUnit.LessThan(best.PricePerUnit) {
			best = p
		}
	}
	return best
}

// AveragePricePaid returns the arithmetic mean price per unit across the
// item's purchases. ok is false when the item has no purchase history.
func (a *Aggregator) AveragePricePaid(item *ledger.Item) (decimal.Decimal, bool) {
	purchases := a.snapshot.PurchasesForItem(item.ID)
	if len(purchases) == 0 {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	for _, p := range purchases {
		sum = sum.Add(p.PricePerUnit)
	}
	return sum.Div(decimal.NewFromInt(int64(len(purchases)))), true
}

// VendorPrice is one row of the per-vendor best-price ranking
type VendorPrice struct {
	Vendor *ledger.Vendor
	Price  decimal.Decimal
}

// LowestPriceByVendor groups the item's purchases by vendor, keeps each
// vendor's minimum price per unit, and returns the pairs sorted ascending
// by price. Purchases with no vendor reference, or whose vendor no longer
// resolves, are excluded.
func (a *Aggregator) LowestPriceByVendor(item *ledger.Item) []VendorPrice {
	type entry struct {
		vendor *ledger.Vendor
		price  decimal.Decimal
	}
	best := make(map[uuid.UUID]*entry)
	order := make([]uuid.UUID, 0)

	for _, p := range a.snapshot.PurchasesForItem(item.ID) {
		if p.VendorID == nil {
			continue
		}
		vendor := a.snapshot.VendorByID(*p.VendorID)
		if vendor == nil {
			continue
		}
		if e, ok := best[vendor.ID]; ok {
			if p.PricePerUnit.LessThan(e.price) {
				e.price = p.PricePerUnit
			}
		} else {
			best[vendor.ID] = &entry{vendor: vendor, price: p.PricePerUnit}
			order = append(order, vendor.ID)
		}
	}

	ranking := make([]VendorPrice, 0, len(order))
	for _, id := range order {
		ranking = append(ranking, VendorPrice{Vendor: best[id].vendor, Price: best[id].price})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Price.LessThan(ranking[j].Price)
	})
	return ranking
}

// VendorIsEverCheapest returns true if the vendor holds the top rank in
// LowestPriceByVendor for any item in the snapshot
func (a *Aggregator) VendorIsEverCheapest(vendorID uuid.UUID) bool {
	for _, item := range a.snapshot.Items {
		ranking := a.LowestPriceByVendor(item)
		if len(ranking) > 0 && ranking[0].Vendor.ID == vendorID {
			return true
		}
	}
	return false
}

// TotalInventoryValue sums current inventory times average price paid over
// the given items. Items without purchase history have no average price and
// contribute nothing; they are omitted rather than treated as zero-value.
func (a *Aggregator) TotalInventoryValue(items []*ledger.Item) valueobject.Money {
	total := decimal.Zero
	for _, item := range items {
		avg, ok := a.AveragePricePaid(item)
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromInt(a.CurrentInventory(item)).Mul(avg))
	}
	return valueobject.NewMoneyUSD(total)
}

package ledger

import (
	"github.com/google/uuid"
)

// Snapshot is the read-only view of the four entity collections that the
// analytics engine computes over. The caller rebuilds it (or hands the same
// one back) whenever the underlying collections change; the engine never
// mutates it.
type Snapshot struct {
	Items     []*Item
	Vendors   []*Vendor
	Purchases []*Purchase
	Usages    []*Usage

	itemsByID   map[uuid.UUID]*Item
	vendorsByID map[uuid.UUID]*Vendor
}

// NewSnapshot builds a Snapshot with lookup indexes over live (non-deleted)
// items and vendors. Collection slices keep their natural order, which the
// duplicate detector's greedy grouping depends on.
func NewSnapshot(items []*Item, vendors []*Vendor, purchases []*Purchase, usages []*Usage) *Snapshot {
	s := &Snapshot{
		Items:       items,
		Vendors:     vendors,
		Purchases:   purchases,
		Usages:      usages,
		itemsByID:   make(map[uuid.UUID]*Item, len(items)),
		vendorsByID: make(map[uuid.UUID]*Vendor, len(vendors)),
	}
	for _, item := range items {
		if item != nil && !item.IsDeleted() {
			s.itemsByID[item.ID] = item
		}
	}
	for _, vendor := range vendors {
		if vendor != nil && !vendor.IsDeleted() {
			s.vendorsByID[vendor.ID] = vendor
		}
	}
	return s
}

// ItemByID returns the live item with the given ID, or nil
func (s *Snapshot) ItemByID(id uuid.UUID) *Item {
	return s.itemsByID[id]
}

// VendorByID returns the live vendor with the given ID, or nil
func (s *Snapshot) VendorByID(id uuid.UUID) *Vendor {
	return s.vendorsByID[id]
}

// PurchasesForItem returns the item's purchases in collection order
func (s *Snapshot) PurchasesForItem(itemID uuid.UUID) []*Purchase {
	result := make([]*Purchase, 0)
	for _, p := range s.Purchases {
		if p.ItemID == itemID {
			result = append(result, p)
		}
	}
	return result
}

// UsagesForItem returns the item's usage records in collection order
func (s *Snapshot) UsagesForItem(itemID uuid.UUID) []*Usage {
	result := make([]*Usage, 0)
	for _, u := range s.Usages {
		if u.ItemID == itemID {
			result = append(result, u)
		}
	}
	return result
}

// Counts returns the sizes of the four collections. The duplicate scan
// trigger compares these, so an in-place edit that keeps sizes unchanged
// does not retrigger a scan.
func (s *Snapshot) Counts() CollectionCounts {
	return CollectionCounts{
		Items:     len(s.Items),
		Vendors:   len(s.Vendors),
		Purchases: len(s.Purchases),
		Usages:    len(s.Usages),
	}
}

// CollectionCounts holds the per-collection sizes of a snapshot
type CollectionCounts struct {
	Items     int
	Vendors   int
	Purchases int
	Usages    int
}

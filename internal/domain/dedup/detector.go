package dedup

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Defaults for the similarity thresholds
const (
	DefaultMaxNameDistance = 2
)

// DefaultPriceEpsilon is the absolute price-per-unit difference under which
// two purchases count as the same price
var DefaultPriceEpsilon = decimal.RequireFromString("0.01")

// Detector clusters near-duplicate entities within each of the four
// collections of a snapshot
type Detector struct {
	maxNameDistance int
	priceEpsilon    decimal.Decimal
}

// DetectorOption is a functional option for configuring the detector
type DetectorOption func(*Detector)

// WithMaxNameDistance sets the edit-distance threshold for name matching
func WithMaxNameDistance(distance int) DetectorOption {
	return func(d *Detector) {
		d.maxNameDistance = distance
	}
}

// WithPriceEpsilon sets the absolute price difference treated as equal
func WithPriceEpsilon(epsilon decimal.Decimal) DetectorOption {
	return func(d *Detector) {
		d.priceEpsilon = epsilon
	}
}

// NewDetector creates a Detector with the default thresholds
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		maxNameDistance: DefaultMaxNameDistance,
		priceEpsilon:    DefaultPriceEpsilon,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Report holds the duplicate groups found in one detection pass, one list
// per entity kind. Every group has two or more members. Counts records the
// collection sizes the pass was computed from so the scan scheduler can
// compare against the current snapshot.
type Report struct {
	ItemGroups     [][]*ledger.Item
	VendorGroups   [][]*ledger.Vendor
	PurchaseGroups [][]*ledger.Purchase
	UsageGroups    [][]*ledger.Usage
	Counts         ledger.CollectionCounts
}

// GroupCount returns the total number of groups across all four kinds
func (r *Report) GroupCount() int {
	return len(r.ItemGroups) + len(r.VendorGroups) + len(r.PurchaseGroups) + len(r.UsageGroups)
}

// Detect runs the greedy grouping pass over all four collections. It is
// quadratic per collection (names additionally pay an edit-distance
// computation per comparison), so callers should run it off their hot path.
func (d *Detector) Detect(s *ledger.Snapshot) *Report {
	return &Report{
		ItemGroups:     d.detectItems(s),
		VendorGroups:   d.detectVendors(s),
		PurchaseGroups: d.detectPurchases(s),
		UsageGroups:    d.detectUsages(s),
		Counts:         s.Counts(),
	}
}

func (d *Detector) detectItems(s *ledger.Snapshot) [][]*ledger.Item {
	return groupEntities(s.Items, (*ledger.Item).GetID, func(a, b *ledger.Item) bool {
		return d.namesSimilar(a.Name, b.Name)
	})
}

func (d *Detector) detectVendors(s *ledger.Snapshot) [][]*ledger.Vendor {
	return groupEntities(s.Vendors, (*ledger.Vendor).GetID, func(a, b *ledger.Vendor) bool {
		if d.namesSimilar(a.Name, b.Name) {
			return true
		}
		phoneA, phoneB := normalizePhone(a.Phone), normalizePhone(b.Phone)
		if phoneA != "" && phoneA == phoneB {
			return true
		}
		emailA, emailB := normalizeText(a.Email), normalizeText(b.Email)
		return emailA != "" && emailA == emailB
	})
}

func (d *Detector) detectPurchases(s *ledger.Snapshot) [][]*ledger.Purchase {
	// Purchases whose item reference no longer resolves are dropped from
	// the scan entirely; two orphans do not match each other.
	candidates := make([]*ledger.Purchase, 0, len(s.Purchases))
	for _, p := range s.Purchases {
		if s.ItemByID(p.ItemID) != nil {
			candidates = append(candidates, p)
		}
	}

	return groupEntities(candidates, (*ledger.Purchase).GetID, func(a, b *ledger.Purchase) bool {
		return a.ItemID == b.ItemID &&
			sameVendor(a.VendorID, b.VendorID) &&
			sameCalendarDay(a.Date, b.Date) &&
			a.Quantity == b.Quantity &&
			a.PricePerUnit.Sub(b.PricePerUnit).Abs().LessThan(d.priceEpsilon)
	})
}

func (d *Detector) detectUsages(s *ledger.Snapshot) [][]*ledger.Usage {
	candidates := make([]*ledger.Usage, 0, len(s.Usages))
	for _, u := range s.Usages {
		if s.ItemByID(u.ItemID) != nil {
			candidates = append(candidates, u)
		}
	}

	return groupEntities(candidates, (*ledger.Usage).GetID, func(a, b *ledger.Usage) bool {
		return a.ItemID == b.ItemID &&
			sameCalendarDay(a.Date, b.Date) &&
			a.Quantity == b.Quantity
	})
}

func (d *Detector) namesSimilar(a, b string) bool {
	na, nb := normalizeText(a), normalizeText(b)
	return na == nb || Distance(na, nb) <= d.maxNameDistance
}

// normalizeText trims whitespace and case-folds, so "  Widget " and
// "WIDGET" compare equal before any edit-distance check. A fresh Caser per
// call keeps this safe for concurrent scans; Casers carry mutable state.
func normalizeText(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// normalizePhone strips everything but digits
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sameVendor treats two absent vendor references as a match; an absent
// reference never matches a present one
func sameVendor(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

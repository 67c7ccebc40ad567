// Package analytics derives read-only metrics from the inventory ledger:
// per-lot expiration classification and per-item stock, usage-rate, reorder
// and pricing statistics. Everything is recomputed on demand from a
// ledger.Snapshot; nothing here mutates or caches state. All date-relative
// computations take the current time as an explicit parameter.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/joshuaswanson/inventory-tracker/internal/domain/ledger"
)

// ExpirationStatus classifies how close a purchase lot is to expiring
type ExpirationStatus string

const (
	ExpirationNotApplicable ExpirationStatus = "NOT_APPLICABLE" // no expiration date set
	ExpirationExpired       ExpirationStatus = "EXPIRED"
	ExpirationCritical      ExpirationStatus = "CRITICAL" // expires within 7 days
	ExpirationWarning       ExpirationStatus = "WARNING"  // expires within 30 days
	ExpirationGood          ExpirationStatus = "GOOD"
)

// Tier boundaries in whole days
const (
	CriticalDays = 7
	WarningDays  = 30
)

// String returns the string representation of the status
func (s ExpirationStatus) String() string {
	return string(s)
}

// DaysUntilExpiration returns the whole-day difference from now to the
// purchase's expiration date, negative for already-expired lots. ok is
// false when no expiration date is set. The value is the floor of the
// elapsed time in days, so an expiration instant already behind now is
// always negative while one later the same day is zero.
func DaysUntilExpiration(p *ledger.Purchase, now time.Time) (int, bool) {
	if p.ExpirationDate == nil {
		return 0, false
	}
	return int(math.Floor(p.ExpirationDate.Sub(now).Hours() / 24)), true
}

// IsExpired returns true if the purchase has an expiration date strictly
// before now
func IsExpired(p *ledger.Purchase, now time.Time) bool {
	return p.ExpirationDate != nil && p.ExpirationDate.Before(now)
}

// StatusOf returns the expiration tier for a purchase. Tiers are mutually
// exclusive and evaluated in order: not-applicable, expired, critical,
// warning, good.
func StatusOf(p *ledger.Purchase, now time.Time) ExpirationStatus {
	days, ok := DaysUntilExpiration(p, now)
	switch {
	case !ok:
		return ExpirationNotApplicable
	case days < 0:
		return ExpirationExpired
	case days <= CriticalDays:
		return ExpirationCritical
	case days <= WarningDays:
		return ExpirationWarning
	default:
		return ExpirationGood
	}
}

// ExpiringLot ties a purchase that is about to expire back to its item
type ExpiringLot struct {
	Item     *ledger.Item
	Purchase *ledger.Purchase
	DaysLeft int
}

// ExpiringWithin returns every purchase whose expiration date falls inside
// [now, now+days] and which still has unconsumed quantity, soonest first.
// Exhausted lots and already-expired lots are excluded: this is a
// forward-looking view, expired-but-unused stock surfaces through StatusOf.
func ExpiringWithin(s *ledger.Snapshot, days int, now time.Time) []ExpiringLot {
	horizon := now.AddDate(0, 0, days)
	lots := make([]ExpiringLot, 0)
	for _, p := range s.Purchases {
		if p.ExpirationDate == nil || p.RemainingQuantity() <= 0 {
			continue
		}
		if p.ExpirationDate.Before(now) || p.ExpirationDate.After(horizon) {
			continue
		}
		item := s.ItemByID(p.ItemID)
		if item == nil {
			continue
		}
		left, _ := DaysUntilExpiration(p, now)
		lots = append(lots, ExpiringLot{Item: item, Purchase: p, DaysLeft: left})
	}
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].DaysLeft < lots[j].DaysLeft
	})
	return lots
}

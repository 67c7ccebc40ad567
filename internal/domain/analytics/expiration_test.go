package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/ledger"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newItem(t *testing.T, name string, reorderLevel int64) *ledger.Item {
	t.Helper()
	item, err := ledger.NewItem(name, valueobject.UnitEach, reorderLevel)
	require.NoError(t, err)
	return item
}

func newPurchase(t *testing.T, itemID uuid.UUID, date time.Time, qty int64, price string) *ledger.Purchase {
	t.Helper()
	p, err := ledger.NewPurchase(itemID, date, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return p
}

func newUsage(t *testing.T, itemID uuid.UUID, date time.Time, qty int64) *ledger.Usage {
	t.Helper()
	u, err := ledger.NewUsage(itemID, date, qty)
	require.NoError(t, err)
	return u
}

func expiringPurchase(t *testing.T, itemID uuid.UUID, expiresAt time.Time) *ledger.Purchase {
	t.Helper()
	p := newPurchase(t, itemID, testNow.AddDate(0, -1, 0), 10, "1.00")
	p.ExpirationDate = &expiresAt
	return p
}

func TestStatusOf_TierBoundaries(t *testing.T) {
	itemID := uuid.New()
	tests := []struct {
		name      string
		expInDays int
		expected  ExpirationStatus
	}{
		{"exactly 7 days is critical", 7, ExpirationCritical},
		{"exactly 8 days is warning", 8, ExpirationWarning},
		{"exactly 30 days is warning", 30, ExpirationWarning},
		{"exactly 31 days is good", 31, ExpirationGood},
		{"tomorrow is critical", 1, ExpirationCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := expiringPurchase(t, itemID, testNow.AddDate(0, 0, tt.expInDays))
			assert.Equal(t, tt.expected, StatusOf(p, testNow))
		})
	}
}

func TestStatusOf_ExpiredAndNotApplicable(t *testing.T) {
	itemID := uuid.New()

	// An expiration instant already behind now is expired, even on the
	// same calendar day
	p := expiringPurchase(t, itemID, testNow.Add(-time.Hour))
	assert.Equal(t, ExpirationExpired, StatusOf(p, testNow))
	assert.True(t, IsExpired(p, testNow))

	days, ok := DaysUntilExpiration(p, testNow)
	assert.True(t, ok)
	assert.Negative(t, days)

	// Later the same day still counts as day zero, which is critical
	p = expiringPurchase(t, itemID, testNow.Add(6*time.Hour))
	assert.Equal(t, ExpirationCritical, StatusOf(p, testNow))
	assert.False(t, IsExpired(p, testNow))

	// No expiration date at all
	noDate := newPurchase(t, itemID, testNow, 10, "1.00")
	assert.Equal(t, ExpirationNotApplicable, StatusOf(noDate, testNow))
	assert.False(t, IsExpired(noDate, testNow))
	_, ok = DaysUntilExpiration(noDate, testNow)
	assert.False(t, ok)
}

func TestDaysUntilExpiration(t *testing.T) {
	itemID := uuid.New()

	p := expiringPurchase(t, itemID, testNow.AddDate(0, 0, 10))
	days, ok := DaysUntilExpiration(p, testNow)
	require.True(t, ok)
	assert.Equal(t, 10, days)

	p = expiringPurchase(t, itemID, testNow.AddDate(0, 0, -3))
	days, ok = DaysUntilExpiration(p, testNow)
	require.True(t, ok)
	assert.Equal(t, -3, days)
}

func TestExpiringWithin(t *testing.T) {
	milk := newItem(t, "Milk", 0)
	eggs := newItem(t, "Eggs", 0)
	items := []*ledger.Item{milk, eggs}

	soon := expiringPurchase(t, milk.ID, testNow.AddDate(0, 0, 3))
	later := expiringPurchase(t, eggs.ID, testNow.AddDate(0, 0, 20))
	boundary := expiringPurchase(t, milk.ID, testNow.AddDate(0, 0, 30))
	outside := expiringPurchase(t, eggs.ID, testNow.AddDate(0, 0, 31))
	expired := expiringPurchase(t, milk.ID, testNow.AddDate(0, 0, -2))
	exhausted := expiringPurchase(t, milk.ID, testNow.AddDate(0, 0, 5))
	exhausted.UsedQuantity = exhausted.Quantity
	noDate := newPurchase(t, eggs.ID, testNow, 10, "1.00")

	snapshot := ledger.NewSnapshot(items, nil,
		[]*ledger.Purchase{later, soon, boundary, outside, expired, exhausted, noDate}, nil)

	lots := ExpiringWithin(snapshot, 30, testNow)

	require.Len(t, lots, 3)
	assert.Equal(t, soon.ID, lots[0].Purchase.ID)
	assert.Equal(t, 3, lots[0].DaysLeft)
	assert.Equal(t, milk.ID, lots[0].Item.ID)
	assert.Equal(t, later.ID, lots[1].Purchase.ID)
	assert.Equal(t, boundary.ID, lots[2].Purchase.ID)
	assert.Equal(t, 30, lots[2].DaysLeft)
}

func TestExpiringWithin_OrphanedPurchaseExcluded(t *testing.T) {
	orphan := expiringPurchase(t, uuid.New(), testNow.AddDate(0, 0, 3))
	snapshot := ledger.NewSnapshot(nil, nil, []*ledger.Purchase{orphan}, nil)

	assert.Empty(t, ExpiringWithin(snapshot, 30, testNow))
}

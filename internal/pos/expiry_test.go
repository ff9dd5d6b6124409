package pos

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrovia/kiosk-service/internal/model"
)

func day(today time.Time, offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func testLot(qty, sold int, expiry time.Time) model.Lot {
	return model.Lot{
		ID:           "CRT-T01",
		ProductName:  "Fresh Tomatoes",
		Quantity:     qty,
		QuantitySold: sold,
		Unit:         model.UnitKg,
		ExpiryDate:   expiry,
		PricePerUnit: decimal.NewFromInt(45),
	}
}

func TestAvailableQuantity(t *testing.T) {
	today := time.Date(2025, 1, 7, 10, 0, 0, 0, time.Local)

	available, err := AvailableQuantity(testLot(15, 12, day(today, 1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if available != 3 {
		t.Errorf("expected 3 available, got %d", available)
	}
}

func TestAvailableQuantity_InvariantViolation(t *testing.T) {
	_, err := AvailableQuantity(testLot(10, 12, time.Now()))
	if !errors.Is(err, ErrQuantityInvariant) {
		t.Errorf("expected ErrQuantityInvariant, got: %v", err)
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	today := time.Date(2025, 1, 7, 14, 30, 0, 0, time.Local)

	cases := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"tomorrow", day(today, 1), 1},
		{"yesterday", day(today, -1), -1},
		{"today", today, 0},
		{"next week", day(today, 7), 7},
		{"time of day ignored", time.Date(2025, 1, 8, 1, 0, 0, 0, time.Local), 1},
		{"late evening today", time.Date(2025, 1, 7, 23, 59, 0, 0, time.Local), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysUntilExpiry(tc.expiry, today)
			if got != tc.want {
				t.Errorf("expected %d days, got %d", tc.want, got)
			}
		})
	}
}

func TestCanSell_Allowed(t *testing.T) {
	today := time.Date(2025, 1, 7, 10, 0, 0, 0, time.Local)
	if err := CanSell(testLot(15, 12, day(today, 1)), today); err != nil {
		t.Errorf("expected sale allowed, got: %v", err)
	}
}

func TestCanSell_Expired(t *testing.T) {
	today := time.Date(2025, 1, 7, 10, 0, 0, 0, time.Local)
	err := CanSell(testLot(10, 2, day(today, -1)), today)
	if !errors.Is(err, ErrLotExpired) {
		t.Errorf("expected ErrLotExpired, got: %v", err)
	}
}

func TestCanSell_ExpiresToday(t *testing.T) {
	// Zero days left still sells; only a negative count blocks.
	today := time.Date(2025, 1, 7, 10, 0, 0, 0, time.Local)
	if err := CanSell(testLot(10, 2, today), today); err != nil {
		t.Errorf("expected sale allowed on expiry day, got: %v", err)
	}
}

func TestCanSell_SoldOut(t *testing.T) {
	today := time.Date(2025, 1, 7, 10, 0, 0, 0, time.Local)
	err := CanSell(testLot(10, 10, day(today, 5)), today)
	if !errors.Is(err, ErrNoStock) {
		t.Errorf("expected ErrNoStock, got: %v", err)
	}
}

func TestCanSell_ExpiryCheckedBeforeStock(t *testing.T) {
	// Both conditions hold; the expiry error wins.
	today := time.Date(2025, 1, 7, 10, 0, 0, 0, time.Local)
	err := CanSell(testLot(10, 10, day(today, -1)), today)
	if !errors.Is(err, ErrLotExpired) {
		t.Errorf("expected ErrLotExpired, got: %v", err)
	}
}

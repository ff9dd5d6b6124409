package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrovia/kiosk-service/internal/model"
)

// SeedLots returns the fixture inventory used when the storage slot is
// absent or unreadable. Expiry and received dates are relative to the given
// day so the fixtures stay meaningful whenever the service starts.
func SeedLots(today time.Time) []model.Lot {
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }
	batch := func(offset int, seq int) string {
		return fmt.Sprintf("BAT-%s-%03d", day(offset).Format("2006-0102"), seq)
	}

	return []model.Lot{
		{
			ID: "CRT-001", ProductName: "Fresh Tomatoes", ProductCategory: "Vegetables",
			Quantity: 20, QuantitySold: 8, Unit: model.UnitKg,
			BatchID: batch(-2, 1), ExpiryDate: day(5), ReceivedDate: day(-2),
			PricePerUnit: decimal.NewFromInt(45), Status: model.LotStatusActive,
		},
		{
			ID: "CRT-002", ProductName: "Green Spinach", ProductCategory: "Leafy Greens",
			Quantity: 15, QuantitySold: 12, Unit: model.UnitBundle,
			BatchID: batch(-3, 2), ExpiryDate: day(1), ReceivedDate: day(-3),
			PricePerUnit: decimal.NewFromInt(25), Status: model.LotStatusExpiringSoon,
		},
		{
			ID: "CRT-003", ProductName: "Carrots", ProductCategory: "Root Vegetables",
			Quantity: 25, QuantitySold: 5, Unit: model.UnitKg,
			BatchID: batch(-1, 3), ExpiryDate: day(7), ReceivedDate: day(-1),
			PricePerUnit: decimal.NewFromInt(35), Status: model.LotStatusActive,
		},
		{
			ID: "CRT-004", ProductName: "Potatoes", ProductCategory: "Root Vegetables",
			Quantity: 50, QuantitySold: 30, Unit: model.UnitKg,
			BatchID: batch(-3, 1), ExpiryDate: day(14), ReceivedDate: day(-3),
			PricePerUnit: decimal.NewFromInt(28), Status: model.LotStatusActive,
		},
		{
			ID: "CRT-005", ProductName: "Fresh Coriander", ProductCategory: "Herbs",
			Quantity: 10, QuantitySold: 10, Unit: model.UnitBundle,
			BatchID: batch(-5, 2), ExpiryDate: day(-1), ReceivedDate: day(-5),
			PricePerUnit: decimal.NewFromInt(15), Status: model.LotStatusExpired,
		},
		{
			ID: "CRT-006", ProductName: "Onions", ProductCategory: "Vegetables",
			Quantity: 40, QuantitySold: 22, Unit: model.UnitKg,
			BatchID: batch(-2, 4), ExpiryDate: day(21), ReceivedDate: day(-2),
			PricePerUnit: decimal.NewFromInt(32), Status: model.LotStatusActive,
		},
		{
			ID: "CRT-007", ProductName: "Broccoli", ProductCategory: "Vegetables",
			Quantity: 12, QuantitySold: 11, Unit: model.UnitPiece,
			BatchID: batch(-4, 3), ExpiryDate: day(2), ReceivedDate: day(-4),
			PricePerUnit: decimal.NewFromInt(55), Status: model.LotStatusLowStock,
		},
		{
			ID: "CRT-008", ProductName: "Bell Peppers", ProductCategory: "Vegetables",
			Quantity: 18, QuantitySold: 6, Unit: model.UnitKg,
			BatchID: batch(-1, 5), ExpiryDate: day(4), ReceivedDate: day(-1),
			PricePerUnit: decimal.NewFromInt(120), Status: model.LotStatusActive,
		},
	}
}

package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrovia/kiosk-service/internal/model"
)

// SeedBills returns the fixture transaction history shown before the first
// checkout of a session. Bills reference the seed lots by their fixed IDs.
func SeedBills(today time.Time) []model.Bill {
	date := today.Format("20060102")
	code := func(seq int) string { return fmt.Sprintf("KSK-%s-%04d", date, seq) }
	price := decimal.NewFromInt

	return []model.Bill{
		{
			ID:       "BILL-003",
			BillCode: code(40),
			Items: []model.SaleLine{
				{LotID: "CRT-002", ProductName: "Green Spinach", Quantity: 2, PricePerUnit: price(25), Unit: model.UnitBundle, Total: price(50)},
				{LotID: "CRT-003", ProductName: "Carrots", Quantity: 1, PricePerUnit: price(35), Unit: model.UnitKg, Total: price(35)},
			},
			Total:         price(85),
			Timestamp:     today.Add(-2 * time.Hour),
			PaymentMethod: model.PaymentCard,
			CrateIDs:      []string{"CRT-002", "CRT-003"},
			BatchIDs:      []string{"BAT-2025-0107-002", "BAT-2025-0107-003"},
		},
		{
			ID:       "BILL-002",
			BillCode: code(41),
			Items: []model.SaleLine{
				{LotID: "CRT-006", ProductName: "Onions", Quantity: 2, PricePerUnit: price(32), Unit: model.UnitKg, Total: price(64)},
			},
			Total:         price(64),
			Timestamp:     today.Add(-1 * time.Hour),
			PaymentMethod: model.PaymentCash,
			CrateIDs:      []string{"CRT-006"},
			BatchIDs:      []string{"BAT-2025-0107-004"},
		},
		{
			ID:       "BILL-001",
			BillCode: code(42),
			Items: []model.SaleLine{
				{LotID: "CRT-001", ProductName: "Fresh Tomatoes", Quantity: 2, PricePerUnit: price(45), Unit: model.UnitKg, Total: price(90)},
				{LotID: "CRT-004", ProductName: "Potatoes", Quantity: 3, PricePerUnit: price(28), Unit: model.UnitKg, Total: price(84)},
			},
			Total:         price(174),
			Timestamp:     today.Add(-30 * time.Minute),
			PaymentMethod: model.PaymentUPI,
			CrateIDs:      []string{"CRT-001", "CRT-004"},
			BatchIDs:      []string{"BAT-2025-0107-001", "BAT-2025-0106-001"},
		},
	}
}

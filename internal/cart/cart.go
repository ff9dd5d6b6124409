// Package cart builds sale transactions. The pending cart is a plain slice of
// sale lines; every operation returns a new slice and leaves its input
// untouched, so a rejected call cannot leave a half-applied cart behind.
package cart

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrovia/kiosk-service/internal/model"
	"github.com/agrovia/kiosk-service/internal/pos"
)

var (
	// ErrStockLimit rejects a line increment past the lot's remaining stock.
	ErrStockLimit = errors.New("stock limit reached")
	// ErrEmptyCart rejects checkout with nothing in the cart.
	ErrEmptyCart = errors.New("empty cart")
)

// AddLine adds one unit of the lot to the pending lines: a fresh line at
// quantity 1, or +1 on the existing line for that lot. The pos.CanSell gate
// runs first; incrementing past the available quantity is rejected with a
// message naming the exact remaining amount.
func AddLine(lines []model.SaleLine, lot model.Lot, today time.Time) ([]model.SaleLine, error) {
	if err := pos.CanSell(lot, today); err != nil {
		return nil, err
	}

	available, err := pos.AvailableQuantity(lot)
	if err != nil {
		return nil, err
	}

	inCart := 0
	if i := indexOf(lines, lot.ID); i >= 0 {
		inCart = lines[i].Quantity
	}
	if inCart >= available {
		return nil, stockLimitError(available, lot)
	}

	next := cloneLines(lines)
	if i := indexOf(next, lot.ID); i >= 0 {
		next[i].Quantity++
		next[i].Total = lineTotal(next[i].Quantity, next[i].PricePerUnit)
		return next, nil
	}
	return append(next, model.SaleLine{
		LotID:        lot.ID,
		ProductName:  lot.ProductName,
		Quantity:     1,
		PricePerUnit: lot.PricePerUnit,
		Unit:         lot.Unit,
		Total:        lot.PricePerUnit,
	}), nil
}

// ChangeQuantity applies delta to the line for lotID. A result of zero or
// less removes the line; a result above the lot's available quantity is
// rejected and the lines come back unchanged. An unknown lotID is a no-op.
func ChangeQuantity(lines []model.SaleLine, lotID string, delta int, lot model.Lot) ([]model.SaleLine, error) {
	i := indexOf(lines, lotID)
	if i < 0 {
		return lines, nil
	}

	newQty := lines[i].Quantity + delta
	if newQty <= 0 {
		return RemoveLine(lines, lotID), nil
	}

	available, err := pos.AvailableQuantity(lot)
	if err != nil {
		return lines, err
	}
	if newQty > available {
		return lines, stockLimitError(available, lot)
	}

	next := cloneLines(lines)
	next[i].Quantity = newQty
	next[i].Total = lineTotal(newQty, next[i].PricePerUnit)
	return next, nil
}

// RemoveLine drops the line for lotID, if present.
func RemoveLine(lines []model.SaleLine, lotID string) []model.SaleLine {
	next := make([]model.SaleLine, 0, len(lines))
	for _, line := range lines {
		if line.LotID != lotID {
			next = append(next, line)
		}
	}
	return next
}

// Total sums the line totals of the pending cart.
func Total(lines []model.SaleLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Total)
	}
	return sum
}

// Finalize turns the pending lines into an immutable bill: defensively copied
// items, the grand total, a dated bill code and the distinct crate and batch
// identifiers in first-appearance order. The batch ID of each referenced lot
// is supplied by lotBatch keyed on lot ID.
func Finalize(lines []model.SaleLine, payment model.PaymentMethod, lotBatch map[string]string, now time.Time) (*model.Bill, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	crateIDs := make([]string, 0, len(lines))
	batchIDs := make([]string, 0, len(lines))
	seenCrate := make(map[string]bool)
	seenBatch := make(map[string]bool)
	for _, line := range lines {
		if !seenCrate[line.LotID] {
			seenCrate[line.LotID] = true
			crateIDs = append(crateIDs, line.LotID)
		}
		if batch, ok := lotBatch[line.LotID]; ok && !seenBatch[batch] {
			seenBatch[batch] = true
			batchIDs = append(batchIDs, batch)
		}
	}

	return &model.Bill{
		ID:            uuid.New().String(),
		BillCode:      NewBillCode(now),
		Items:         cloneLines(lines),
		Total:         Total(lines),
		Timestamp:     now,
		PaymentMethod: payment,
		CrateIDs:      crateIDs,
		BatchIDs:      batchIDs,
	}, nil
}

// NewBillCode formats a human-readable bill code from the sale date and a
// random four-digit suffix, e.g. KSK-20250107-0042.
func NewBillCode(now time.Time) string {
	return fmt.Sprintf("KSK-%s-%04d", now.Format("20060102"), rand.Intn(10000))
}

func stockLimitError(available int, lot model.Lot) error {
	return fmt.Errorf("only %d %s available for %s: %w", available, lot.Unit, lot.ProductName, ErrStockLimit)
}

func lineTotal(qty int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

func indexOf(lines []model.SaleLine, lotID string) int {
	for i, line := range lines {
		if line.LotID == lotID {
			return i
		}
	}
	return -1
}

func cloneLines(lines []model.SaleLine) []model.SaleLine {
	next := make([]model.SaleLine, len(lines))
	copy(next, lines)
	return next
}

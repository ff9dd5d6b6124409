// Package pos holds the sellability rules for perishable crates: availability
// and expiry arithmetic plus the status classification derived from them.
// Every function is pure; the reference date is always an explicit parameter
// so date-dependent behavior stays deterministic under test.
package pos

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/agrovia/kiosk-service/internal/model"
)

var (
	// ErrLotExpired blocks any sale of a crate past its expiry date.
	ErrLotExpired = errors.New("item has expired - selling blocked")
	// ErrNoStock blocks sales of a crate with nothing left.
	ErrNoStock = errors.New("no stock available")
	// ErrQuantityInvariant flags a lot whose sold count exceeds what was
	// received. That is corrupt data, not a business outcome.
	ErrQuantityInvariant = errors.New("quantity sold exceeds received quantity")
)

// AvailableQuantity returns quantity minus quantity sold. A negative
// difference violates the lot invariant and is reported as an error.
func AvailableQuantity(lot model.Lot) (int, error) {
	available := lot.Quantity - lot.QuantitySold
	if available < 0 {
		return 0, fmt.Errorf("lot %s: %w", lot.ID, ErrQuantityInvariant)
	}
	return available, nil
}

// DaysUntilExpiry compares the two dates at local midnight, ignoring
// time-of-day. Negative means expired that many days ago, zero means the
// crate expires today.
func DaysUntilExpiry(expiry, today time.Time) int {
	e := midnight(expiry)
	t := midnight(today)
	return int(math.Ceil(e.Sub(t).Hours() / 24))
}

// CanSell is the hard gate in front of every cart mutation. It returns nil
// when the lot may be sold, ErrLotExpired or ErrNoStock otherwise. Expiry is
// checked first; either condition alone blocks the sale.
func CanSell(lot model.Lot, today time.Time) error {
	available, err := AvailableQuantity(lot)
	if err != nil {
		return err
	}
	if DaysUntilExpiry(lot.ExpiryDate, today) < 0 {
		return ErrLotExpired
	}
	if available <= 0 {
		return ErrNoStock
	}
	return nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

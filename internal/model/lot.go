package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitKg     Unit = "kg"
	UnitPiece  Unit = "units"
	UnitBundle Unit = "bundles"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitPiece, UnitBundle:
		return true
	}
	return false
}

type LotStatus string

const (
	LotStatusActive       LotStatus = "active"
	LotStatusLowStock     LotStatus = "low_stock"
	LotStatusExpiringSoon LotStatus = "expiring_soon"
	LotStatusExpired      LotStatus = "expired"
	LotStatusSoldOut      LotStatus = "sold_out"
)

// Lot is one crate of produce received in a single delivery. BatchID traces
// the lot back to its receiving event and is distinct from the lot ID itself.
// Lots are never deleted; expired and sold-out crates stay visible for audit.
type Lot struct {
	ID              string          `json:"id"`
	ProductName     string          `json:"productName"`
	ProductCategory string          `json:"productCategory"`
	Quantity        int             `json:"quantity"`
	QuantitySold    int             `json:"quantitySold"`
	Unit            Unit            `json:"unit"`
	BatchID         string          `json:"batchId"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	ReceivedDate    time.Time       `json:"receivedDate"`
	PricePerUnit    decimal.Decimal `json:"pricePerUnit"`
	Status          LotStatus       `json:"status"`
}

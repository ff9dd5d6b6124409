package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// SaleLine is one crate/quantity entry of a pending or completed sale.
// Product name, price and unit are denormalized from the lot for display.
type SaleLine struct {
	LotID        string          `json:"crateId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Unit         Unit            `json:"unit"`
	Total        decimal.Decimal `json:"total"`
}

// Bill is an immutable record of a completed sale. CrateIDs and BatchIDs hold
// the distinct identifiers referenced by the items, in first-appearance order.
type Bill struct {
	ID            string          `json:"id"`
	BillCode      string          `json:"billCode"`
	Items         []SaleLine      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     time.Time       `json:"timestamp"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CrateIDs      []string        `json:"crateIds"`
	BatchIDs      []string        `json:"batchIds"`
}

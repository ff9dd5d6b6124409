package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrovia/kiosk-service/internal/model"
)

type AddLotInput struct {
	ProductName     string          `json:"productName" validate:"required,min=2"`
	ProductCategory string          `json:"productCategory" validate:"required,min=2"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	Unit            model.Unit      `json:"unit" validate:"required,oneof=kg units bundles"`
	PricePerUnit    decimal.Decimal `json:"pricePerUnit"`
	ExpiryDate      time.Time       `json:"expiryDate" validate:"required"`
}

// UpdateLotInput merges non-nil fields into an existing lot. Identity fields
// (ID, batch, received date) are not editable.
type UpdateLotInput struct {
	ProductName     *string          `json:"productName,omitempty"`
	ProductCategory *string          `json:"productCategory,omitempty"`
	Quantity        *int             `json:"quantity,omitempty" validate:"omitempty,min=0"`
	QuantitySold    *int             `json:"quantitySold,omitempty" validate:"omitempty,min=0"`
	Unit            *model.Unit      `json:"unit,omitempty" validate:"omitempty,oneof=kg units bundles"`
	PricePerUnit    *decimal.Decimal `json:"pricePerUnit,omitempty"`
	ExpiryDate      *time.Time       `json:"expiryDate,omitempty"`
}

type LotFilters struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Query    string `form:"q"`
}

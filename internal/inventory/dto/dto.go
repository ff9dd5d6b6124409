package dto

import (
	"github.com/agrovia/kiosk-service/internal/model"
	"github.com/agrovia/kiosk-service/internal/pos"
)

// Overview is the dashboard summary view: the most urgent lots capped at the
// configured display count, plus the header counts.
type Overview struct {
	Lots  []model.Lot  `json:"lots"`
	Stats pos.LotStats `json:"stats"`
}

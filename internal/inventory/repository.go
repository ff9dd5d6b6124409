package inventory

import (
	"context"
	"errors"

	"github.com/agrovia/kiosk-service/internal/model"
)

// ErrSlotMissing reports that the storage slot has never been written.
// Callers fall back to seed data; it is not a failure.
var ErrSlotMissing = errors.New("inventory slot missing")

// Repository is the single storage slot holding the serialized lot list.
// Save always writes the complete list; Load returns the complete list or
// ErrSlotMissing. There is no partial update and no schema versioning.
type Repository interface {
	Load(ctx context.Context) ([]model.Lot, error)
	Save(ctx context.Context, lots []model.Lot) error
}

package inventory

import (
	"context"
	"errors"

	"github.com/agrovia/kiosk-service/internal/inventory/dto"
	"github.com/agrovia/kiosk-service/internal/model"
	"github.com/agrovia/kiosk-service/internal/pos"
)

var (
	ErrLotNotFound = errors.New("lot not found")
	// ErrIntegrity rejects an operation that would corrupt the lot list,
	// e.g. a sale referencing a missing lot or overselling a crate.
	ErrIntegrity = errors.New("inventory integrity violation")
)

// UseCase owns the authoritative lot list for the session. All other
// components receive copies; mutations go through here and are synchronized
// to the storage slot best-effort after every change.
type UseCase interface {
	ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.Lot, error)
	GetLot(ctx context.Context, id string) (*model.Lot, error)
	AddLot(ctx context.Context, input *dto.AddLotInput) (*model.Lot, error)
	UpdateLot(ctx context.Context, id string, input *dto.UpdateLotInput) (*model.Lot, error)

	// RecordSale applies a finalized bill to the lot list: every line's
	// quantity is added to its lot's sold count. The whole call is validated
	// against a snapshot first; any bad line rejects the sale with no lot
	// mutated.
	RecordSale(ctx context.Context, bill *model.Bill) error

	// Snapshot returns a read-only copy of the current lot list.
	Snapshot(ctx context.Context) []model.Lot

	Alerts(ctx context.Context, horizonDays int) []model.ExpiryAlert
	Overview(ctx context.Context) *dto.Overview
	Stats(ctx context.Context) pos.LotStats
}

package repository

import (
	"context"
	"sync"

	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/model"
)

// MemoryRepository is a volatile slot: the in-memory fake behind the
// "memory" storage driver and the substitute used throughout the tests.
type MemoryRepository struct {
	mu      sync.Mutex
	lots    []model.Lot
	written bool

	// SaveErr, when set, is returned by every Save. Tests use it to check
	// that persistence failures stay best-effort.
	SaveErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) ([]model.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.written {
		return nil, inventory.ErrSlotMissing
	}
	out := make([]model.Lot, len(r.lots))
	copy(out, r.lots)
	return out, nil
}

func (r *MemoryRepository) Save(ctx context.Context, lots []model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.lots = make([]model.Lot, len(lots))
	copy(r.lots, lots)
	r.written = true
	return nil
}

// SetLots pre-populates the slot, as if a previous session had saved it.
func (r *MemoryRepository) SetLots(lots []model.Lot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lots = make([]model.Lot, len(lots))
	copy(r.lots, lots)
	r.written = true
}

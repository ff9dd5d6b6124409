package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/inventory/dto"
	"github.com/agrovia/kiosk-service/internal/model"
	"github.com/agrovia/kiosk-service/internal/pos"
	"github.com/agrovia/kiosk-service/pkg/logger"
)

type inventoryUseCase struct {
	mu     sync.Mutex
	lots   []model.Lot
	repo   inventory.Repository
	cfg    pos.Config
	now    func() time.Time
	logger *logger.Logger
}

// NewInventoryUseCase builds the store and performs the one startup read of
// the storage slot. A missing slot or a slot that fails the validate step
// falls back to seed data; load problems are logged, never fatal. The clock
// may be nil, in which case time.Now is used.
func NewInventoryUseCase(ctx context.Context, repo inventory.Repository, cfg pos.Config, now func() time.Time, log *logger.Logger) inventory.UseCase {
	if now == nil {
		now = time.Now
	}
	uc := &inventoryUseCase{
		repo:   repo,
		cfg:    cfg,
		now:    now,
		logger: log,
	}

	lots, err := repo.Load(ctx)
	switch {
	case errors.Is(err, inventory.ErrSlotMissing):
		log.Info("inventory slot missing, seeding fixtures")
		lots = inventory.SeedLots(now())
	case err != nil:
		log.Warn("failed to load inventory slot, falling back to seed data", zap.Error(err))
		lots = inventory.SeedLots(now())
	default:
		if verr := validateLots(lots); verr != nil {
			log.Warn("inventory slot failed validation, falling back to seed data", zap.Error(verr))
			lots = inventory.SeedLots(now())
		} else {
			log.Info("inventory slot loaded", zap.Int("lots", len(lots)))
		}
	}

	uc.lots = lots
	uc.refreshStatuses()
	return uc
}

func (uc *inventoryUseCase) ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.Lot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.refreshStatuses()
	out := make([]model.Lot, 0, len(uc.lots))
	for _, lot := range uc.lots {
		if filters != nil && !matches(lot, filters) {
			continue
		}
		out = append(out, lot)
	}
	return out, nil
}

func (uc *inventoryUseCase) GetLot(ctx context.Context, id string) (*model.Lot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.refreshStatuses()
	for _, lot := range uc.lots {
		if lot.ID == id {
			l := lot
			return &l, nil
		}
	}
	return nil, fmt.Errorf("lot %s: %w", id, inventory.ErrLotNotFound)
}

func (uc *inventoryUseCase) AddLot(ctx context.Context, input *dto.AddLotInput) (*model.Lot, error) {
	if input.PricePerUnit.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("price per unit must be greater than 0")
	}
	if !input.Unit.Valid() {
		return nil, fmt.Errorf("unknown unit %q", input.Unit)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	lot := model.Lot{
		ID:              newLotID(),
		ProductName:     input.ProductName,
		ProductCategory: input.ProductCategory,
		Quantity:        input.Quantity,
		QuantitySold:    0,
		Unit:            input.Unit,
		BatchID:         uc.newBatchID(now),
		ExpiryDate:      input.ExpiryDate,
		ReceivedDate:    now,
		PricePerUnit:    input.PricePerUnit,
	}
	lot.Status = pos.Classify(lot, now, uc.cfg)

	uc.lots = append(uc.lots, lot)
	uc.persist(ctx)
	return &lot, nil
}

func (uc *inventoryUseCase) UpdateLot(ctx context.Context, id string, input *dto.UpdateLotInput) (*model.Lot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		// Updating an unknown lot is a no-op, matching the store contract.
		return nil, nil
	}

	lot := uc.lots[i]
	if input.ProductName != nil {
		lot.ProductName = *input.ProductName
	}
	if input.ProductCategory != nil {
		lot.ProductCategory = *input.ProductCategory
	}
	if input.Quantity != nil {
		lot.Quantity = *input.Quantity
	}
	if input.QuantitySold != nil {
		lot.QuantitySold = *input.QuantitySold
	}
	if input.Unit != nil {
		if !input.Unit.Valid() {
			return nil, fmt.Errorf("unknown unit %q", *input.Unit)
		}
		lot.Unit = *input.Unit
	}
	if input.PricePerUnit != nil {
		lot.PricePerUnit = *input.PricePerUnit
	}
	if input.ExpiryDate != nil {
		lot.ExpiryDate = *input.ExpiryDate
	}

	if lot.QuantitySold > lot.Quantity || lot.QuantitySold < 0 {
		return nil, fmt.Errorf("lot %s: sold %d of %d: %w", id, lot.QuantitySold, lot.Quantity, inventory.ErrIntegrity)
	}

	lot.Status = pos.Classify(lot, uc.now(), uc.cfg)
	uc.lots[i] = lot
	uc.persist(ctx)
	return &lot, nil
}

func (uc *inventoryUseCase) RecordSale(ctx context.Context, bill *model.Bill) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Validation pass over the current list; nothing is mutated until every
	// line checks out.
	for _, line := range bill.Items {
		i := uc.indexOf(line.LotID)
		if i < 0 {
			return fmt.Errorf("sale references missing lot %s: %w", line.LotID, inventory.ErrIntegrity)
		}
		lot := uc.lots[i]
		if lot.QuantitySold+line.Quantity > lot.Quantity {
			return fmt.Errorf("sale of %d exceeds stock of lot %s: %w", line.Quantity, line.LotID, inventory.ErrIntegrity)
		}
	}

	now := uc.now()
	for _, line := range bill.Items {
		i := uc.indexOf(line.LotID)
		uc.lots[i].QuantitySold += line.Quantity
		uc.lots[i].Status = pos.Classify(uc.lots[i], now, uc.cfg)
	}
	uc.persist(ctx)
	return nil
}

func (uc *inventoryUseCase) Snapshot(ctx context.Context) []model.Lot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.refreshStatuses()
	out := make([]model.Lot, len(uc.lots))
	copy(out, uc.lots)
	return out
}

func (uc *inventoryUseCase) Alerts(ctx context.Context, horizonDays int) []model.ExpiryAlert {
	if horizonDays <= 0 {
		horizonDays = uc.cfg.AlertHorizonDays
	}
	return pos.BuildAlerts(uc.Snapshot(ctx), uc.now(), horizonDays)
}

func (uc *inventoryUseCase) Overview(ctx context.Context) *dto.Overview {
	lots := uc.Snapshot(ctx)
	now := uc.now()

	ranked := pos.RankByUrgency(lots, now)
	if len(ranked) > uc.cfg.OverviewLimit {
		ranked = ranked[:uc.cfg.OverviewLimit]
	}
	return &dto.Overview{
		Lots:  ranked,
		Stats: pos.Stats(lots, now, uc.cfg),
	}
}

func (uc *inventoryUseCase) Stats(ctx context.Context) pos.LotStats {
	return pos.Stats(uc.Snapshot(ctx), uc.now(), uc.cfg)
}

// persist writes the full lot list back to the slot. Durability is
// best-effort: a failed write is logged and the in-memory state stands.
// Callers must hold uc.mu.
func (uc *inventoryUseCase) persist(ctx context.Context) {
	out := make([]model.Lot, len(uc.lots))
	copy(out, uc.lots)
	if err := uc.repo.Save(ctx, out); err != nil {
		uc.logger.Warn("failed to persist inventory slot", zap.Error(err), zap.Int("lots", len(out)))
	}
}

// refreshStatuses recomputes every stored status tag from the live
// classification. Callers must hold uc.mu.
func (uc *inventoryUseCase) refreshStatuses() {
	now := uc.now()
	for i := range uc.lots {
		uc.lots[i].Status = pos.Classify(uc.lots[i], now, uc.cfg)
	}
}

func (uc *inventoryUseCase) indexOf(id string) int {
	for i := range uc.lots {
		if uc.lots[i].ID == id {
			return i
		}
	}
	return -1
}

// newBatchID derives the batch code from the receiving date plus a per-day
// sequence. Callers must hold uc.mu.
func (uc *inventoryUseCase) newBatchID(received time.Time) string {
	prefix := fmt.Sprintf("BAT-%s-", received.Format("2006-0102"))
	seq := 1
	for _, lot := range uc.lots {
		if strings.HasPrefix(lot.BatchID, prefix) {
			seq++
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq)
}

func newLotID() string {
	return "CRT-" + strings.ToUpper(uuid.New().String()[:8])
}

func matches(lot model.Lot, f *dto.LotFilters) bool {
	if f.Status != "" && string(lot.Status) != f.Status {
		return false
	}
	if f.Category != "" && !strings.EqualFold(lot.ProductCategory, f.Category) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(lot.ProductName), q) &&
			!strings.Contains(strings.ToLower(lot.ID), q) &&
			!strings.Contains(strings.ToLower(lot.BatchID), q) {
			return false
		}
	}
	return true
}

func validateLots(lots []model.Lot) error {
	seen := make(map[string]bool, len(lots))
	for _, lot := range lots {
		if lot.ID == "" {
			return errors.New("lot with empty id")
		}
		if seen[lot.ID] {
			return fmt.Errorf("duplicate lot id %s", lot.ID)
		}
		seen[lot.ID] = true
		if lot.QuantitySold < 0 || lot.QuantitySold > lot.Quantity {
			return fmt.Errorf("lot %s: sold %d of %d", lot.ID, lot.QuantitySold, lot.Quantity)
		}
		if lot.ExpiryDate.IsZero() || lot.ReceivedDate.IsZero() {
			return fmt.Errorf("lot %s: missing dates", lot.ID)
		}
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrovia/kiosk-service/config"
	"github.com/agrovia/kiosk-service/internal/billing"
	"github.com/agrovia/kiosk-service/internal/billing/dto"
	"github.com/agrovia/kiosk-service/internal/cart"
	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/model"
	"github.com/agrovia/kiosk-service/pkg/logger"
)

type billingUseCase struct {
	mu    sync.Mutex
	bills []model.Bill

	inv    inventory.UseCase
	kiosk  config.KioskConfig
	now    func() time.Time
	logger *logger.Logger
}

// NewBillingUseCase wires checkout against the inventory usecase. Bills live
// in memory for the session, newest last, pre-populated with the fixture
// history.
func NewBillingUseCase(inv inventory.UseCase, kiosk config.KioskConfig, now func() time.Time, log *logger.Logger) billing.UseCase {
	if now == nil {
		now = time.Now
	}
	return &billingUseCase{
		bills:  billing.SeedBills(now()),
		inv:    inv,
		kiosk:  kiosk,
		now:    now,
		logger: log,
	}
}

func (uc *billingUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*model.Bill, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot := uc.inv.Snapshot(ctx)
	byID := make(map[string]model.Lot, len(snapshot))
	for _, lot := range snapshot {
		byID[lot.ID] = lot
	}

	today := uc.now()
	var lines []model.SaleLine
	lotBatch := make(map[string]string, len(input.Lines))

	for _, req := range input.Lines {
		lot, ok := byID[req.LotID]
		if !ok {
			return nil, fmt.Errorf("checkout line %s: %w", req.LotID, inventory.ErrLotNotFound)
		}

		next, err := cart.AddLine(lines, lot, today)
		if err != nil {
			return nil, fmt.Errorf("checkout line %s: %w", req.LotID, err)
		}
		if req.Quantity > 1 {
			next, err = cart.ChangeQuantity(next, lot.ID, req.Quantity-1, lot)
			if err != nil {
				return nil, fmt.Errorf("checkout line %s: %w", req.LotID, err)
			}
		}
		lines = next
		lotBatch[lot.ID] = lot.BatchID
	}

	bill, err := cart.Finalize(lines, model.PaymentMethod(input.PaymentMethod), lotBatch, today)
	if err != nil {
		return nil, err
	}

	if err := uc.inv.RecordSale(ctx, bill); err != nil {
		return nil, err
	}

	uc.bills = append(uc.bills, *bill)
	uc.logger.Info("checkout completed",
		zap.String("billCode", bill.BillCode),
		zap.Int("lines", len(bill.Items)),
		zap.String("total", bill.Total.StringFixed(2)),
		zap.String("payment", string(bill.PaymentMethod)),
	)
	return bill, nil
}

func (uc *billingUseCase) RecentTransactions(ctx context.Context, limit int) []model.Bill {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n := len(uc.bills)
	if limit <= 0 || limit > n {
		limit = n
	}
	// Newest first.
	out := make([]model.Bill, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, uc.bills[i])
	}
	return out
}

func (uc *billingUseCase) GetBill(ctx context.Context, id string) (*model.Bill, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.bills {
		if uc.bills[i].ID == id || uc.bills[i].BillCode == id {
			bill := uc.bills[i]
			return &bill, nil
		}
	}
	return nil, billing.ErrBillNotFound
}

func (uc *billingUseCase) Receipt(ctx context.Context, id string) (string, error) {
	bill, err := uc.GetBill(ctx, id)
	if err != nil {
		return "", err
	}
	return billing.RenderReceipt(bill, uc.kiosk), nil
}

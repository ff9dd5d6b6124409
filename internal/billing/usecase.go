package billing

import (
	"context"
	"errors"

	"github.com/agrovia/kiosk-service/internal/billing/dto"
	"github.com/agrovia/kiosk-service/internal/model"
)

var ErrBillNotFound = errors.New("bill not found")

// UseCase runs the checkout flow and keeps the session's transaction
// history. Checkout is one atomic unit: every requested line is validated
// against an inventory snapshot through the cart rules before anything is
// recorded; a single failing line means no bill and no stock mutation.
type UseCase interface {
	Checkout(ctx context.Context, input *dto.CheckoutInput) (*model.Bill, error)
	RecentTransactions(ctx context.Context, limit int) []model.Bill
	GetBill(ctx context.Context, id string) (*model.Bill, error)
	Receipt(ctx context.Context, id string) (string, error)
}

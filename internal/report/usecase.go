package report

import (
	"context"

	"github.com/agrovia/kiosk-service/internal/model"
)

// UseCase builds the end-of-day views: the sales/inventory summary and the
// compliance scorecard. Both are computed on demand from the live inventory
// and transaction history, never cached.
type UseCase interface {
	Summary(ctx context.Context) *model.DailySummary
	Compliance(ctx context.Context) []model.ComplianceMetric
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrovia/kiosk-service/config"
	"github.com/agrovia/kiosk-service/internal/billing/dto"
	blUC "github.com/agrovia/kiosk-service/internal/billing/usecase"
	"github.com/agrovia/kiosk-service/internal/inventory/repository"
	invUC "github.com/agrovia/kiosk-service/internal/inventory/usecase"
	"github.com/agrovia/kiosk-service/internal/model"
	"github.com/agrovia/kiosk-service/internal/pos"
	"github.com/agrovia/kiosk-service/internal/report"
	"github.com/agrovia/kiosk-service/pkg/logger"
)

var fixedNow = func() time.Time {
	return time.Date(2025, 1, 7, 12, 0, 0, 0, time.Local)
}

func newTestReport(t *testing.T) report.UseCase {
	t.Helper()
	inv := invUC.NewInventoryUseCase(context.Background(), repository.NewMemoryRepository(), pos.DefaultConfig(), fixedNow, logger.NewNop())
	bl := blUC.NewBillingUseCase(inv, config.KioskConfig{}, fixedNow, logger.NewNop())
	return NewReportUseCase(inv, bl, fixedNow, logger.NewNop())
}

func TestCompliance(t *testing.T) {
	uc := newTestReport(t)

	metrics := uc.Compliance(context.Background())
	if len(metrics) != 4 {
		t.Fatalf("expected 4 metrics, got %d", len(metrics))
	}

	byLabel := make(map[string]model.ComplianceMetric, len(metrics))
	for _, m := range metrics {
		byLabel[m.Label] = m
	}

	if got := byLabel["Expired Sales Blocked"].Status; got != model.MetricGood {
		t.Errorf("expected good at target, got %s", got)
	}
	if got := byLabel["Inventory Accuracy"].Status; got != model.MetricGood {
		t.Errorf("expected good above target, got %s", got)
	}
	if got := byLabel["On-time Receipt Scan"].Status; got != model.MetricWarning {
		t.Errorf("expected warning just under target, got %s", got)
	}
}

func TestMetricStatus(t *testing.T) {
	cases := []struct {
		name   string
		value  float64
		target float64
		want   model.MetricStatus
	}{
		{"at target", 95, 95, model.MetricGood},
		{"above target", 98, 95, model.MetricGood},
		{"inside warning band", 91, 95, model.MetricWarning},
		{"at band edge", 95 * 0.95, 95, model.MetricWarning},
		{"below band", 80, 95, model.MetricCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := metricStatus(tc.value, tc.target); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	uc := newTestReport(t)
	ctx := context.Background()

	summary := uc.Summary(ctx)

	// Seeded bills all dated today: 85 + 64 + 174.
	if !summary.TotalSales.Equal(decimal.NewFromInt(323)) {
		t.Errorf("expected total sales 323, got %s", summary.TotalSales)
	}
	if summary.TotalTransactions != 3 {
		t.Errorf("expected 3 transactions, got %d", summary.TotalTransactions)
	}
	if summary.ItemsSold != 10 {
		t.Errorf("expected 10 items sold, got %d", summary.ItemsSold)
	}
	// Only CRT-005 is expired; it has nothing left, so no expired stock.
	if summary.ExpiredItems != 0 {
		t.Errorf("expected 0 expired items, got %d", summary.ExpiredItems)
	}
	// Remaining stock across the non-expired seed lots.
	if summary.UnsoldItems != 86 {
		t.Errorf("expected 86 unsold items, got %d", summary.UnsoldItems)
	}
	if summary.ComplianceScore != 98 {
		t.Errorf("expected compliance score 98, got %d", summary.ComplianceScore)
	}
}

func TestSummary_ReflectsCheckout(t *testing.T) {
	inv := invUC.NewInventoryUseCase(context.Background(), repository.NewMemoryRepository(), pos.DefaultConfig(), fixedNow, logger.NewNop())
	bl := blUC.NewBillingUseCase(inv, config.KioskConfig{}, fixedNow, logger.NewNop())
	uc := NewReportUseCase(inv, bl, fixedNow, logger.NewNop())
	ctx := context.Background()

	before := uc.Summary(ctx)

	_, err := bl.Checkout(ctx, &dto.CheckoutInput{
		Lines:         []dto.CheckoutLine{{LotID: "CRT-001", Quantity: 2}},
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	after := uc.Summary(ctx)
	if after.TotalTransactions != before.TotalTransactions+1 {
		t.Errorf("expected one more transaction, got %d", after.TotalTransactions)
	}
	if !after.TotalSales.Equal(before.TotalSales.Add(decimal.NewFromInt(90))) {
		t.Errorf("expected sales up by 90, got %s", after.TotalSales)
	}
	if after.UnsoldItems != before.UnsoldItems-2 {
		t.Errorf("expected unsold down by 2, got %d", after.UnsoldItems)
	}
}

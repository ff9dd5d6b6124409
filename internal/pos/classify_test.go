package pos

import (
	"testing"
	"time"

	"github.com/agrovia/kiosk-service/internal/model"
)

func TestClassify(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)
	cfg := DefaultConfig()

	cases := []struct {
		name string
		lot  model.Lot
		want model.LotStatus
	}{
		{"expired", testLot(10, 2, day(today, -1)), model.LotStatusExpired},
		{"expiring today", testLot(10, 2, today), model.LotStatusExpiringSoon},
		{"expiring in two days", testLot(10, 2, day(today, 2)), model.LotStatusExpiringSoon},
		{"sold out", testLot(10, 10, day(today, 5)), model.LotStatusSoldOut},
		{"low stock", testLot(20, 17, day(today, 5)), model.LotStatusLowStock},
		{"exactly at threshold is not low", testLot(20, 16, day(today, 5)), model.LotStatusActive},
		{"active", testLot(20, 5, day(today, 5)), model.LotStatusActive},
		{"expiry outranks sold out", testLot(10, 10, day(today, -2)), model.LotStatusExpired},
		{"expiry outranks low stock", testLot(20, 19, day(today, 1)), model.LotStatusExpiringSoon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.lot, today, cfg)
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestRankByUrgency_StableOrder(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)

	lots := []model.Lot{
		{ID: "CRT-A", ExpiryDate: day(today, 5), Quantity: 10},
		{ID: "CRT-B", ExpiryDate: day(today, 1), Quantity: 10},
		{ID: "CRT-C", ExpiryDate: day(today, 1), Quantity: 10},
		{ID: "CRT-D", ExpiryDate: day(today, -1), Quantity: 10},
	}

	ranked := RankByUrgency(lots, today)

	wantOrder := []string{"CRT-D", "CRT-B", "CRT-C", "CRT-A"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, ranked[i].ID)
		}
	}
	// Input untouched.
	if lots[0].ID != "CRT-A" {
		t.Error("RankByUrgency mutated its input")
	}
}

func TestSeverity(t *testing.T) {
	cases := []struct {
		days int
		want model.AlertSeverity
	}{
		{-3, model.AlertExpired},
		{-1, model.AlertExpired},
		{0, model.AlertUrgent},
		{2, model.AlertUrgent},
		{3, model.AlertWarning},
		{7, model.AlertWarning},
	}
	for _, tc := range cases {
		if got := Severity(tc.days); got != tc.want {
			t.Errorf("days=%d: expected %s, got %s", tc.days, tc.want, got)
		}
	}
}

func TestBuildAlerts_HorizonAndOrder(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)

	lots := []model.Lot{
		{ID: "CRT-A", ProductName: "Potatoes", ExpiryDate: day(today, 10), Quantity: 10},
		{ID: "CRT-B", ProductName: "Spinach", ExpiryDate: day(today, 1), Quantity: 8, QuantitySold: 3},
		{ID: "CRT-C", ProductName: "Milk", ExpiryDate: day(today, -1), Quantity: 6},
		{ID: "CRT-D", ProductName: "Carrots", ExpiryDate: day(today, 6), Quantity: 12},
	}

	alerts := BuildAlerts(lots, today, 7)

	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	if alerts[0].LotID != "CRT-C" || alerts[0].Severity != model.AlertExpired {
		t.Errorf("expected expired CRT-C first, got %s (%s)", alerts[0].LotID, alerts[0].Severity)
	}
	if alerts[1].LotID != "CRT-B" || alerts[1].Severity != model.AlertUrgent {
		t.Errorf("expected urgent CRT-B second, got %s (%s)", alerts[1].LotID, alerts[1].Severity)
	}
	if alerts[1].Quantity != 5 {
		t.Errorf("expected remaining quantity 5, got %d", alerts[1].Quantity)
	}
	if alerts[2].LotID != "CRT-D" || alerts[2].Severity != model.AlertWarning {
		t.Errorf("expected warning CRT-D third, got %s (%s)", alerts[2].LotID, alerts[2].Severity)
	}
}

func TestStats(t *testing.T) {
	today := time.Date(2025, 1, 7, 9, 0, 0, 0, time.Local)
	cfg := DefaultConfig()

	lots := []model.Lot{
		testLot(20, 5, day(today, 10)),  // active
		testLot(10, 2, day(today, 2)),   // expiring soon (window)
		testLot(10, 2, day(today, 3)),   // expiring soon (window edge)
		testLot(10, 2, today),           // expires today: not in window count
		testLot(10, 2, day(today, -1)),  // expired
		testLot(10, 10, day(today, 10)), // sold out
	}

	stats := Stats(lots, today, cfg)

	if stats.Total != 6 {
		t.Errorf("expected total 6, got %d", stats.Total)
	}
	if stats.Active != 1 {
		t.Errorf("expected 1 active, got %d", stats.Active)
	}
	if stats.ExpiringSoon != 2 {
		t.Errorf("expected 2 expiring soon, got %d", stats.ExpiringSoon)
	}
	if stats.Expired != 1 {
		t.Errorf("expected 1 expired, got %d", stats.Expired)
	}
}

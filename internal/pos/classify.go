package pos

import (
	"sort"
	"time"

	"github.com/agrovia/kiosk-service/internal/model"
)

// Config carries the classification thresholds. Zero values are not usable;
// start from DefaultConfig and override from app config.
type Config struct {
	LowStockPercent  float64
	ExpiringSoonDays int
	AlertHorizonDays int
	OverviewLimit    int
}

func DefaultConfig() Config {
	return Config{
		LowStockPercent:  20,
		ExpiringSoonDays: 2,
		AlertHorizonDays: 7,
		OverviewLimit:    5,
	}
}

// statsExpiryWindowDays is the "expiring" window of the inventory header
// counts, slightly wider than the urgent badge window.
const statsExpiryWindowDays = 3

// Classify buckets a lot by urgency. Expiry outranks stock level. Low stock
// is always computed live from the remaining percentage; the stored status
// field on the lot is display state and never an input here.
func Classify(lot model.Lot, today time.Time, cfg Config) model.LotStatus {
	days := DaysUntilExpiry(lot.ExpiryDate, today)
	if days < 0 {
		return model.LotStatusExpired
	}
	if days <= cfg.ExpiringSoonDays {
		return model.LotStatusExpiringSoon
	}

	available, err := AvailableQuantity(lot)
	if err != nil {
		available = 0
	}
	if available == 0 {
		return model.LotStatusSoldOut
	}
	if lot.Quantity > 0 {
		percent := float64(available) / float64(lot.Quantity) * 100
		if percent < cfg.LowStockPercent {
			return model.LotStatusLowStock
		}
	}
	return model.LotStatusActive
}

// RankByUrgency returns a new slice sorted ascending by days until expiry.
// The sort is stable: lots expiring on the same day keep insertion order.
func RankByUrgency(lots []model.Lot, today time.Time) []model.Lot {
	ranked := make([]model.Lot, len(lots))
	copy(ranked, lots)
	sort.SliceStable(ranked, func(i, j int) bool {
		return DaysUntilExpiry(ranked[i].ExpiryDate, today) < DaysUntilExpiry(ranked[j].ExpiryDate, today)
	})
	return ranked
}

// Severity maps days-until-expiry onto the alert tiers.
func Severity(days int) model.AlertSeverity {
	switch {
	case days < 0:
		return model.AlertExpired
	case days <= 2:
		return model.AlertUrgent
	default:
		return model.AlertWarning
	}
}

// BuildAlerts derives expiry alerts for every lot expiring within horizonDays,
// most urgent first. The alert quantity is what remains unsold.
func BuildAlerts(lots []model.Lot, today time.Time, horizonDays int) []model.ExpiryAlert {
	alerts := make([]model.ExpiryAlert, 0)
	for _, lot := range RankByUrgency(lots, today) {
		days := DaysUntilExpiry(lot.ExpiryDate, today)
		if days > horizonDays {
			continue
		}
		available, err := AvailableQuantity(lot)
		if err != nil {
			available = 0
		}
		alerts = append(alerts, model.ExpiryAlert{
			LotID:           lot.ID,
			ProductName:     lot.ProductName,
			ExpiryDate:      lot.ExpiryDate,
			DaysUntilExpiry: days,
			Quantity:        available,
			Severity:        Severity(days),
		})
	}
	return alerts
}

// LotStats are the header counts of the inventory view.
type LotStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiringSoon"`
	Expired      int `json:"expired"`
}

func Stats(lots []model.Lot, today time.Time, cfg Config) LotStats {
	stats := LotStats{Total: len(lots)}
	for _, lot := range lots {
		days := DaysUntilExpiry(lot.ExpiryDate, today)
		if days < 0 {
			stats.Expired++
		} else if days > 0 && days <= statsExpiryWindowDays {
			stats.ExpiringSoon++
		}
		if Classify(lot, today, cfg) == model.LotStatusActive {
			stats.Active++
		}
	}
	return stats
}

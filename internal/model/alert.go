package model

import "time"

type AlertSeverity string

const (
	AlertWarning AlertSeverity = "warning"
	AlertUrgent  AlertSeverity = "urgent"
	AlertExpired AlertSeverity = "expired"
)

// ExpiryAlert is a derived view over a lot nearing or past expiry. Alerts are
// recomputed from the current lot list on every read and never persisted.
type ExpiryAlert struct {
	LotID           string        `json:"crateId"`
	ProductName     string        `json:"productName"`
	ExpiryDate      time.Time     `json:"expiryDate"`
	DaysUntilExpiry int           `json:"daysUntilExpiry"`
	Quantity        int           `json:"quantity"`
	Severity        AlertSeverity `json:"status"`
}

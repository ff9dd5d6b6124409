package model

import "github.com/shopspring/decimal"

type MetricStatus string

const (
	MetricGood     MetricStatus = "good"
	MetricWarning  MetricStatus = "warning"
	MetricCritical MetricStatus = "critical"
)

// ComplianceMetric compares an observed value against its target.
type ComplianceMetric struct {
	Label  string       `json:"label"`
	Value  float64      `json:"value"`
	Target float64      `json:"target"`
	Status MetricStatus `json:"status"`
}

// DailySummary aggregates the day's sales and the current inventory state.
type DailySummary struct {
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalTransactions int             `json:"totalTransactions"`
	ItemsSold         int             `json:"itemsSold"`
	ExpiredItems      int             `json:"expiredItems"`
	UnsoldItems       int             `json:"unsoldItems"`
	ComplianceScore   int             `json:"complianceScore"`
}

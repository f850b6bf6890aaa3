package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the derived KPI values shown on the dashboard header.
type Summary struct {
	UniqueItems    int             `json:"unique_items"`
	TotalQty       decimal.Decimal `json:"total_qty"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Transactions   int             `json:"transactions"`
	MovingItems    int             `json:"moving_items"`
	NonMovingItems int             `json:"non_moving_items"`
	AvgDailyValue  decimal.Decimal `json:"avg_daily_value"`
	AvgDailyQty    decimal.Decimal `json:"avg_daily_qty"`
	HighDailyValue decimal.Decimal `json:"high_daily_value"`
	LowDailyValue  decimal.Decimal `json:"low_daily_value"`
}

// ChartData is the exact contract handed to the rendering collaborator:
// one display label per point (pre-wrapped into lines), one numeric value
// per point, and the untruncated label for tooltip and detail display.
type ChartData struct {
	CanvasID   string            `json:"canvas_id"`
	Title      string            `json:"title"`
	Kind       string            `json:"kind"` // "bar", "hbar" or "line"
	Metric     string            `json:"metric"`
	Unit       string            `json:"unit"` // axis unit: "Currency" or "Units"
	Labels     [][]string        `json:"labels"`
	Values     []decimal.Decimal `json:"values"`
	FullLabels []string          `json:"full_labels"`
}

// DashboardReport is the complete, atomically assembled output of one
// aggregation pass: the KPI summary plus every chart's data.
type DashboardReport struct {
	ID          string      `json:"id"`
	GeneratedAt time.Time   `json:"generated_at"`
	SourceFile  string      `json:"source_file"`
	Summary     Summary     `json:"summary"`
	Charts      []ChartData `json:"charts"`
}

// Chart kind identifiers understood by renderers.
const (
	ChartKindBar  = "bar"
	ChartKindHBar = "hbar"
	ChartKindLine = "line"
)

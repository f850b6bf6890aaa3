// Package kpi derives the dashboard summary statistics from an aggregation
// result.
package kpi

import (
	"github.com/shopspring/decimal"

	"storeops/issuance-dash/internal/aggregator"
	"storeops/issuance-dash/internal/models"
)

// Compute derives the KPI summary from aggregation totals and the daily
// table. Every divide and min/max guards the empty case so a dataset with
// no date-bearing records yields zeros, never NaN or infinities.
//
// The non-moving count is 0 by definition: the input is issuance-only, so
// every item that appears has moved. A true non-moving figure would need a
// master item list to compare against, which is out of scope.
func Compute(result *aggregator.Result) models.Summary {
	summary := models.Summary{
		UniqueItems:  result.UniqueItemCount(),
		TotalQty:     result.TotalQty,
		TotalValue:   result.TotalValue,
		Transactions: result.Transactions,
		MovingItems:  result.UniqueItemCount(),
	}

	daily := result.Table(aggregator.GroupDaily)
	if len(daily) == 0 {
		return summary
	}

	days := decimal.NewFromInt(int64(len(daily)))
	summary.AvgDailyValue = result.TotalValue.Div(days)
	summary.AvgDailyQty = result.TotalQty.Div(days)

	first := true
	for _, entry := range daily {
		if first {
			summary.HighDailyValue = entry.Value
			summary.LowDailyValue = entry.Value
			first = false
			continue
		}
		if entry.Value.GreaterThan(summary.HighDailyValue) {
			summary.HighDailyValue = entry.Value
		}
		if entry.Value.LessThan(summary.LowDailyValue) {
			summary.LowDailyValue = entry.Value
		}
	}

	return summary
}

package summary

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storeops/issuance-dash/internal/currencyutils"
	"storeops/issuance-dash/internal/models"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", Cmd.Use)
	assert.Contains(t, Cmd.Short, "KPI summary")
	assert.Contains(t, Cmd.Long, "aggregates")
	assert.NotNil(t, Cmd.Run)
}

func TestPrintSummary(t *testing.T) {
	s := models.Summary{
		UniqueItems:    42,
		TotalQty:       decimal.NewFromInt(12500),
		TotalValue:     decimal.NewFromFloat(1200000),
		Transactions:   310,
		MovingItems:    42,
		NonMovingItems: 0,
		AvgDailyValue:  decimal.NewFromFloat(40000),
		AvgDailyQty:    decimal.NewFromFloat(416.6),
		HighDailyValue: decimal.NewFromFloat(95500),
		LowDailyValue:  decimal.NewFromFloat(1200),
	}

	var buf bytes.Buffer
	printSummary(&buf, s, currencyutils.NewFormatter("SAR", "Units"))
	out := buf.String()

	assert.Contains(t, out, "Unique Items Issued:  42")
	assert.Contains(t, out, "Total Quantity:       12.5 K Units")
	assert.Contains(t, out, "Total Value:          SAR 1.2 M")
	assert.Contains(t, out, "Transactions:         310")
	assert.Contains(t, out, "Non-Moving Items:     0")
	assert.Contains(t, out, "Avg Daily Value:      SAR 40 K")
	assert.Contains(t, out, "Highest Daily Value:  SAR 95.5 K")
	assert.Contains(t, out, "Lowest Daily Value:   SAR 1.2 K")
}

func TestPrintSummary_Zeros(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, models.Summary{}, currencyutils.NewFormatter("SAR", "Units"))
	out := buf.String()

	assert.Contains(t, out, "Total Quantity:       0 Units")
	assert.Contains(t, out, "Total Value:          SAR 0")
}

package aggregator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/issuance-dash/internal/fields"
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
)

func newTestEngine() *Engine {
	return New(fields.NewResolver(fields.Aliases{}), &logging.MockLogger{})
}

func sampleRecords() []models.Record {
	return []models.Record{
		{
			"Issue Date": "05/03/2024", "DEPARTMENT": "MAINTENANCE",
			"Description": "BOLT", "Item Code": "IC-1",
			"Issued By": "ALI", "Issued Qty": "10", "Issued Value": "100",
		},
		{
			"Issue Date": "05/03/2024", "DEPARTMENT": "PRODUCTION",
			"Description": "CEMENT", "Item Code": "IC-2",
			"Issued By": "OMAR", "Issued Qty": "5", "Issued Value": "250.50",
		},
		{
			"Issue Date": "06/03/2024", "DEPARTMENT": "MAINTENANCE",
			"Description": "BOLT", "Item Code": "IC-1",
			"Issued By": "ALI", "Issued Qty": "2", "Issued Value": "20",
		},
	}
}

func TestAggregateTotalsAndTables(t *testing.T) {
	result := newTestEngine().Aggregate(sampleRecords())

	assert.Equal(t, 3, result.Transactions)
	assert.True(t, result.TotalValue.Equal(decimal.RequireFromString("370.50")))
	assert.True(t, result.TotalQty.Equal(decimal.NewFromInt(17)))
	assert.Equal(t, 2, result.UniqueItemCount())

	dept := result.Table(GroupDepartment)
	require.Len(t, dept, 2)
	assert.True(t, dept["MAINTENANCE"].Value.Equal(decimal.NewFromInt(120)))
	assert.True(t, dept["MAINTENANCE"].Qty.Equal(decimal.NewFromInt(12)))

	daily := result.Table(GroupDaily)
	require.Len(t, daily, 2)
	assert.True(t, daily["2024-03-05"].Value.Equal(decimal.RequireFromString("350.50")))
	assert.True(t, daily["2024-03-06"].Value.Equal(decimal.NewFromInt(20)))

	weekly := result.Table(GroupWeekly)
	// Both dates fall in the same simplified week bucket
	require.Len(t, weekly, 1)
	assert.True(t, weekly["2024-W10"].Qty.Equal(decimal.NewFromInt(17)))
}

func TestAggregateTablesPartitionTotals(t *testing.T) {
	result := newTestEngine().Aggregate(sampleRecords())

	for _, name := range []string{GroupDepartment, GroupMaterial, GroupStorekeeper} {
		table := result.Table(name)
		assert.True(t, table.TotalValue().Equal(result.TotalValue),
			"%s value sum must equal total value", name)
		assert.True(t, table.TotalQty().Equal(result.TotalQty),
			"%s qty sum must equal total qty", name)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	records := sampleRecords()
	first := newTestEngine().Aggregate(records)
	second := newTestEngine().Aggregate(records)

	assert.Equal(t, first.Transactions, second.Transactions)
	assert.True(t, first.TotalValue.Equal(second.TotalValue))
	assert.Equal(t, first.UniqueItems, second.UniqueItems)
	for name, table := range first.Tables {
		other := second.Table(name)
		require.Len(t, other, len(table), name)
		for key, entry := range table {
			assert.True(t, entry.Value.Equal(other[key].Value))
			assert.True(t, entry.Qty.Equal(other[key].Qty))
		}
	}
}

func TestAggregateExplicitWeekBeatsDate(t *testing.T) {
	result := newTestEngine().Aggregate([]models.Record{
		{"Issue Date": "05/03/2024", "WEEK": "2024-W9", "Issued Value": "10", "Issued Qty": "1"},
	})

	weekly := result.Table(GroupWeekly)
	require.Len(t, weekly, 1)
	_, ok := weekly["2024-W9"]
	assert.True(t, ok, "explicit WEEK column must win over the date-derived key")
}

func TestAggregateWeekFromDateWhenNoColumn(t *testing.T) {
	result := newTestEngine().Aggregate([]models.Record{
		{"Issue Date": "05/03/2024", "Issued Value": "10", "Issued Qty": "1"},
	})

	_, ok := result.Table(GroupWeekly)["2024-W10"]
	assert.True(t, ok)
}

func TestAggregateMissingFieldFallbacks(t *testing.T) {
	result := newTestEngine().Aggregate([]models.Record{
		{"Unrelated Header": "x"},
	})

	assert.Equal(t, 1, result.Transactions)
	assert.True(t, result.TotalValue.IsZero())
	assert.True(t, result.TotalQty.IsZero())

	_, ok := result.Table(GroupDepartment)[fields.UnknownDepartment]
	assert.True(t, ok)
	_, ok = result.Table(GroupMaterial)[fields.UnknownMaterial]
	assert.True(t, ok)
	_, ok = result.Table(GroupStorekeeper)[fields.UnknownStorekeeper]
	assert.True(t, ok)

	assert.Empty(t, result.Table(GroupDaily))
	assert.Empty(t, result.Table(GroupWeekly))

	// Missing item code falls back to the material placeholder, never skipped
	assert.Equal(t, 1, result.UniqueItemCount())
}

func TestAggregateUnparseableDate(t *testing.T) {
	result := newTestEngine().Aggregate([]models.Record{
		{"Issue Date": "not a date", "DEPARTMENT": "MAINTENANCE", "Issued Value": "50", "Issued Qty": "1"},
	})

	// The record still contributes everywhere except the date buckets
	assert.True(t, result.TotalValue.Equal(decimal.NewFromInt(50)))
	assert.Len(t, result.Table(GroupDepartment), 1)
	assert.Empty(t, result.Table(GroupDaily))
	assert.Empty(t, result.Table(GroupWeekly))
}

func TestAggregateNegativeContributions(t *testing.T) {
	result := newTestEngine().Aggregate([]models.Record{
		{"DEPARTMENT": "MAINTENANCE", "Issued Value": "100", "Issued Qty": "5"},
		{"DEPARTMENT": "MAINTENANCE", "Issued Value": "-40", "Issued Qty": "-2"},
	})

	dept := result.Table(GroupDepartment)["MAINTENANCE"]
	assert.True(t, dept.Value.Equal(decimal.NewFromInt(60)))
	assert.True(t, dept.Qty.Equal(decimal.NewFromInt(3)))
}

func TestAggregateDoesNotMutateRecords(t *testing.T) {
	rec := models.Record{"Issue Date": "05/03/2024", "Issued Value": "10"}
	snapshot := models.Record{"Issue Date": "05/03/2024", "Issued Value": "10"}

	newTestEngine().Aggregate([]models.Record{rec})
	assert.Equal(t, snapshot, rec)
}

func TestAddGrouping(t *testing.T) {
	e := newTestEngine()
	e.AddGrouping(Grouping{
		Name: "month",
		Key: func(c *RowContext) (string, bool) {
			if !c.HasDate {
				return "", false
			}
			return c.Date.Format("2006-01"), true
		},
	})

	result := e.Aggregate(sampleRecords())
	month := result.Table("month")
	require.Len(t, month, 1)
	assert.True(t, month["2024-03"].Qty.Equal(decimal.NewFromInt(17)))
}

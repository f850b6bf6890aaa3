package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
)

func sampleReport() *models.DashboardReport {
	return &models.DashboardReport{
		ID:          "test-id",
		GeneratedAt: time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC),
		SourceFile:  "issuance.csv",
		Summary: models.Summary{
			UniqueItems:  2,
			Transactions: 3,
			TotalValue:   decimal.RequireFromString("370.50"),
			TotalQty:     decimal.NewFromInt(17),
		},
		Charts: []models.ChartData{
			{
				CanvasID:   "deptValueChart",
				Title:      "Top 10 Departments by Currency",
				Kind:       models.ChartKindHBar,
				Metric:     models.MetricValue,
				Unit:       "Currency",
				Labels:     [][]string{{"MAINTENANCE"}, {"VERY LONG DEPARTMENT", "SECOND LINE"}},
				Values:     []decimal.Decimal{decimal.RequireFromString("120.00"), decimal.NewFromInt(50)},
				FullLabels: []string{"MAINTENANCE", "VERY LONG DEPARTMENT SECOND LINE"},
			},
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Generate(sampleReport(), "json")
	require.NoError(t, err)

	var decoded models.DashboardReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test-id", decoded.ID)
	assert.Equal(t, 3, decoded.Summary.Transactions)
	require.Len(t, decoded.Charts, 1)
	assert.Equal(t, "deptValueChart", decoded.Charts[0].CanvasID)
}

func TestGenerateCSV(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Generate(sampleReport(), "csv")
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# Top 10 Departments by Currency")
	assert.Contains(t, out, "label,full_label,value")
	assert.Contains(t, out, "MAINTENANCE,MAINTENANCE,120")
	// Multiline labels are joined for CSV
	assert.Contains(t, out, "VERY LONG DEPARTMENT SECOND LINE")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	_, err := g.Generate(sampleReport(), "xml")
	assert.Error(t, err)
}

func TestWriteToFile(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	path := filepath.Join(t.TempDir(), "out", "report.json")

	require.NoError(t, g.Write(sampleReport(), "json", path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test-id")
}

func TestWriteToWriter(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	var buf strings.Builder

	require.NoError(t, g.Write(sampleReport(), "json", "", &buf))
	assert.Contains(t, buf.String(), "issuance.csv")
}

func TestWriteChartFiles(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	dir := t.TempDir()

	require.NoError(t, g.WriteChartFiles(sampleReport(), dir))

	data, err := os.ReadFile(filepath.Join(dir, "deptValueChart.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "MAINTENANCE")
}

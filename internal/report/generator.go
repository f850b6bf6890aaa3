// Package report serializes dashboard reports for downstream consumers:
// a JSON document with the full summary and chart series, or one CSV file
// per chart for spreadsheet review.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"storeops/issuance-dash/internal/fileutils"
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
)

// Generator renders dashboard reports in the supported output formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Generate serializes the report in the requested format ("json" or "csv").
// CSV output concatenates the per-chart sections; WriteChartFiles produces
// separate files instead.
func (g *Generator) Generate(report *models.DashboardReport, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(report)
	case "csv":
		return g.generateCSV(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(report *models.DashboardReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateCSV(report *models.DashboardReport) ([]byte, error) {
	var b strings.Builder
	for _, chart := range report.Charts {
		b.WriteString("# " + chart.Title + "\n")
		if err := g.WriteChartCSV(chart, &b); err != nil {
			return nil, err
		}
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// chartCSVRow is the flat row shape for per-chart CSV export.
type chartCSVRow struct {
	Label     string          `csv:"label"`
	FullLabel string          `csv:"full_label"`
	Value     decimal.Decimal `csv:"value"`
}

// WriteChartCSV writes one chart's series as CSV rows. Multiline display
// labels are joined back to a single line.
func (g *Generator) WriteChartCSV(chart models.ChartData, w io.Writer) error {
	rows := make([]chartCSVRow, 0, len(chart.Values))
	for i, value := range chart.Values {
		rows = append(rows, chartCSVRow{
			Label:     strings.Join(chart.Labels[i], " "),
			FullLabel: chart.FullLabels[i],
			Value:     value,
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("error writing chart CSV for %s: %w", chart.CanvasID, err)
	}
	return nil
}

// WriteChartFiles writes one CSV file per chart into dir, named by canvas
// id.
func (g *Generator) WriteChartFiles(report *models.DashboardReport, dir string) error {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return err
	}

	for _, chart := range report.Charts {
		path := filepath.Join(dir, chart.CanvasID+".csv")
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating chart CSV file: %w", err)
		}
		if err := g.WriteChartCSV(chart, file); err != nil {
			_ = file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close file")
		}
		g.logger.WithFields(
			logging.Field{Key: logging.FieldChart, Value: chart.CanvasID},
			logging.Field{Key: logging.FieldOutputFile, Value: path},
		).Info("Wrote chart CSV")
	}
	return nil
}

// Write serializes the report and writes it to path, or to w when path is
// empty.
func (g *Generator) Write(report *models.DashboardReport, format, path string, w io.Writer) error {
	data, err := g.Generate(report, format)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = w.Write(data)
		return err
	}

	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}

	g.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: format},
	).Info("Wrote dashboard report")
	return nil
}

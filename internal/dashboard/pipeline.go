package dashboard

import (
	"time"

	"github.com/google/uuid"

	"storeops/issuance-dash/internal/aggregator"
	"storeops/issuance-dash/internal/chartdata"
	"storeops/issuance-dash/internal/kpi"
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
)

// Canvas ids of the nine dashboard charts.
const (
	CanvasDeptQty       = "deptQtyChart"
	CanvasDeptValue     = "deptValueChart"
	CanvasStorekeeper   = "storekeeperChart"
	CanvasMaterialQty   = "materialQtyChart"
	CanvasMaterialValue = "materialValueChart"
	CanvasDailyQty      = "dailyQtyChart"
	CanvasDailyValue    = "dailyValueChart"
	CanvasWeeklyQty     = "weeklyQtyChart"
	CanvasWeeklyValue   = "weeklyValueChart"
)

// Pipeline runs one dataset through aggregation, KPI computation and chart
// preparation, producing the complete dashboard report in one shot.
type Pipeline struct {
	engine   *aggregator.Engine
	preparer *chartdata.Preparer
	logger   logging.Logger
}

// NewPipeline wires a Pipeline from its stages.
func NewPipeline(engine *aggregator.Engine, preparer *chartdata.Preparer, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{engine: engine, preparer: preparer, logger: logger}
}

// BuildReport aggregates the records and assembles the full report: KPI
// summary plus the nine chart series. The report is complete before it is
// returned; callers never observe a partially built dashboard.
func (p *Pipeline) BuildReport(sourceFile string, records []models.Record) *models.DashboardReport {
	result := p.engine.Aggregate(records)

	dept := result.Table(aggregator.GroupDepartment)
	material := result.Table(aggregator.GroupMaterial)
	storekeeper := result.Table(aggregator.GroupStorekeeper)
	daily := result.Table(aggregator.GroupDaily)
	weekly := result.Table(aggregator.GroupWeekly)

	report := &models.DashboardReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		SourceFile:  sourceFile,
		Summary:     kpi.Compute(result),
		Charts: []models.ChartData{
			p.preparer.Ranked(CanvasDeptQty, "Top 10 Departments by Units", models.ChartKindHBar, dept, models.MetricQty, false, false),
			p.preparer.Ranked(CanvasDeptValue, "Top 10 Departments by Currency", models.ChartKindHBar, dept, models.MetricValue, false, false),
			p.preparer.Ranked(CanvasStorekeeper, "Material Issuance Distribution by Storekeeper", models.ChartKindBar, storekeeper, models.MetricQty, false, true),
			p.preparer.Ranked(CanvasMaterialQty, "Fast Moving Materials (Units)", models.ChartKindHBar, material, models.MetricQty, true, false),
			p.preparer.Ranked(CanvasMaterialValue, "Fast Moving Materials (Currency)", models.ChartKindHBar, material, models.MetricValue, true, false),
			p.preparer.Trend(CanvasDailyQty, "Daily Trend (Units)", daily, models.MetricQty, true),
			p.preparer.Trend(CanvasDailyValue, "Daily Trend (Currency)", daily, models.MetricValue, true),
			p.preparer.Trend(CanvasWeeklyQty, "Weekly Trend (Units)", weekly, models.MetricQty, false),
			p.preparer.Trend(CanvasWeeklyValue, "Weekly Trend (Currency)", weekly, models.MetricValue, false),
		},
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: sourceFile},
		logging.Field{Key: logging.FieldCount, Value: result.Transactions},
	).Info("Dashboard report assembled")

	return report
}

// RenderInto renders every chart of a report into the session. All charts
// are rendered before any is installed, so a renderer failure leaves the
// previously displayed dashboard untouched.
func (p *Pipeline) RenderInto(report *models.DashboardReport, renderer Renderer, session *Session) error {
	type rendered struct {
		canvasID string
		chart    Chart
	}

	charts := make([]rendered, 0, len(report.Charts))
	for _, data := range report.Charts {
		chart, err := renderer.Render(data)
		if err != nil {
			for _, r := range charts {
				_ = r.chart.Close()
			}
			return err
		}
		charts = append(charts, rendered{canvasID: data.CanvasID, chart: chart})
	}

	for _, r := range charts {
		session.Replace(r.canvasID, r.chart)
	}
	return nil
}

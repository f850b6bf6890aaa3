// Package chartdata converts grouped-sum tables into the sorted label and
// value series the chart renderer consumes.
package chartdata

import (
	"sort"

	"github.com/shopspring/decimal"

	"storeops/issuance-dash/internal/dateutils"
	"storeops/issuance-dash/internal/models"
	"storeops/issuance-dash/internal/textutils"
)

// Preparer builds chart series with the configured ranking size and label
// width.
type Preparer struct {
	topN       int
	labelWidth int
}

// NewPreparer returns a Preparer. Non-positive arguments fall back to the
// dashboard defaults of top 10 and 30-character labels.
func NewPreparer(topN, labelWidth int) *Preparer {
	if topN <= 0 {
		topN = 10
	}
	if labelWidth <= 0 {
		labelWidth = 30
	}
	return &Preparer{topN: topN, labelWidth: labelWidth}
}

type entry struct {
	key   string
	value decimal.Decimal
}

// Ranked builds a descending-by-metric series limited to the top N keys.
// With limitless=true every key is included (the storekeeper distribution
// chart ranks all entries). When shorten is set, display labels are the
// canonicalized material names while FullLabels keeps the originals for
// tooltips.
func (p *Preparer) Ranked(canvasID, title, kind string, table models.Table, metric string, shorten, limitless bool) models.ChartData {
	entries := make([]entry, 0, len(table))
	for key, stat := range table {
		entries = append(entries, entry{key: key, value: stat.Metric(metric)})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].value.Equal(entries[j].value) {
			return entries[i].value.GreaterThan(entries[j].value)
		}
		// Deterministic tie-break
		return entries[i].key < entries[j].key
	})

	if !limitless && len(entries) > p.topN {
		entries = entries[:p.topN]
	}

	return p.build(canvasID, title, kind, metric, entries, shorten, false)
}

// Trend builds an ascending-by-key series. Lexicographic order is
// chronologically correct for both YYYY-MM-DD and YYYY-W<n> keys within a
// year. dayLabels renders daily keys as short "05 Mar" axis labels.
func (p *Preparer) Trend(canvasID, title string, table models.Table, metric string, dayLabels bool) models.ChartData {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, entry{key: key, value: table[key].Metric(metric)})
	}

	return p.build(canvasID, title, models.ChartKindLine, metric, entries, false, dayLabels)
}

func (p *Preparer) build(canvasID, title, kind, metric string, entries []entry, shorten, dayLabels bool) models.ChartData {
	chart := models.ChartData{
		CanvasID:   canvasID,
		Title:      title,
		Kind:       kind,
		Metric:     metric,
		Unit:       unitFor(metric),
		Labels:     make([][]string, 0, len(entries)),
		Values:     make([]decimal.Decimal, 0, len(entries)),
		FullLabels: make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		label := e.key
		switch {
		case shorten:
			label = textutils.ShortenMaterialName(label)
		case dayLabels:
			label = dateutils.DayLabel(label)
		}

		chart.Labels = append(chart.Labels, textutils.WrapLabel(label, p.labelWidth))
		chart.Values = append(chart.Values, roundForDisplay(e.value, metric))
		chart.FullLabels = append(chart.FullLabels, e.key)
	}

	return chart
}

// roundForDisplay rounds quantities to the nearest integer and monetary
// values to 2 decimal places.
func roundForDisplay(val decimal.Decimal, metric string) decimal.Decimal {
	if metric == models.MetricQty {
		return val.Round(0)
	}
	return val.Round(2)
}

func unitFor(metric string) string {
	if metric == models.MetricQty {
		return "Units"
	}
	return "Currency"
}

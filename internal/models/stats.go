package models

import "github.com/shopspring/decimal"

// StatEntry is the accumulator for one group key: the summed issued value
// and summed issued quantity of every record that mapped to the key.
// Contributions are signed; returns and credits make both fields decrease.
type StatEntry struct {
	Value decimal.Decimal `json:"value"`
	Qty   decimal.Decimal `json:"qty"`
}

// Add accumulates one record's contribution into the entry.
func (e *StatEntry) Add(value, qty decimal.Decimal) {
	e.Value = e.Value.Add(value)
	e.Qty = e.Qty.Add(qty)
}

// Metric returns the named metric ("value" or "qty") from the entry.
func (e *StatEntry) Metric(metric string) decimal.Decimal {
	if metric == MetricQty {
		return e.Qty
	}
	return e.Value
}

// Metric selector names used by chart preparation.
const (
	MetricValue = "value"
	MetricQty   = "qty"
)

// Table maps a dimension key (department name, material description,
// storekeeper, day or week bucket) to its accumulator. The five grouping
// tables of one aggregation pass share no storage.
type Table map[string]*StatEntry

// Add accumulates a contribution under key, creating the entry on first use.
func (t Table) Add(key string, value, qty decimal.Decimal) {
	entry, ok := t[key]
	if !ok {
		entry = &StatEntry{}
		t[key] = entry
	}
	entry.Add(value, qty)
}

// TotalValue sums the value metric over all entries.
func (t Table) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t {
		total = total.Add(e.Value)
	}
	return total
}

// TotalQty sums the qty metric over all entries.
func (t Table) TotalQty() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t {
		total = total.Add(e.Qty)
	}
	return total
}

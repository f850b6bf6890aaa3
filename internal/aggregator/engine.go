// Package aggregator implements the single-pass aggregation engine that
// turns the raw record sequence into grouped-sum tables and running totals.
package aggregator

import (
	"time"

	"github.com/shopspring/decimal"

	"storeops/issuance-dash/internal/dateutils"
	"storeops/issuance-dash/internal/fields"
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
)

// Names of the standard grouping tables.
const (
	GroupDepartment  = "department"
	GroupMaterial    = "material"
	GroupStorekeeper = "storekeeper"
	GroupDaily       = "daily"
	GroupWeekly      = "weekly"
)

// RowContext carries the fields resolved once per record, shared by every
// grouping rule so no rule forces a second resolution pass.
type RowContext struct {
	Record      models.Record
	Department  string
	Material    string
	Storekeeper string
	Date        time.Time
	HasDate     bool
	Week        string
	HasWeek     bool
}

// Grouping describes one grouped-sum table declaratively: a table name and
// a key extractor. Returning ok=false excludes the record from this table
// only; totals and the other tables are unaffected. New groupings can be
// added without touching the aggregation loop.
type Grouping struct {
	Name string
	Key  func(*RowContext) (string, bool)
}

// Result holds everything one aggregation pass produces. It is owned
// exclusively by the pass until returned, after which it must be treated
// as immutable by consumers.
type Result struct {
	Tables       map[string]models.Table
	TotalValue   decimal.Decimal
	TotalQty     decimal.Decimal
	Transactions int
	UniqueItems  map[string]struct{}
}

// Table returns the named grouping table, or an empty one if the grouping
// never saw a record.
func (r *Result) Table(name string) models.Table {
	if t, ok := r.Tables[name]; ok {
		return t
	}
	return models.Table{}
}

// UniqueItemCount returns the number of distinct item keys seen.
func (r *Result) UniqueItemCount() int {
	return len(r.UniqueItems)
}

// Engine aggregates record sequences. An Engine is reusable across passes;
// each Aggregate call builds a fresh Result.
type Engine struct {
	resolver  *fields.Resolver
	logger    logging.Logger
	groupings []Grouping
}

// New creates an Engine with the five standard groupings: department,
// material, storekeeper, daily and weekly.
func New(resolver *fields.Resolver, logger logging.Logger) *Engine {
	if resolver == nil {
		resolver = fields.NewResolver(fields.Aliases{})
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	e := &Engine{resolver: resolver, logger: logger}
	e.groupings = []Grouping{
		{Name: GroupDepartment, Key: func(c *RowContext) (string, bool) {
			return c.Department, true
		}},
		{Name: GroupMaterial, Key: func(c *RowContext) (string, bool) {
			// The original description is the grouping key; display
			// shortening never changes which records group together.
			return c.Material, true
		}},
		{Name: GroupStorekeeper, Key: func(c *RowContext) (string, bool) {
			return c.Storekeeper, true
		}},
		{Name: GroupDaily, Key: func(c *RowContext) (string, bool) {
			if !c.HasDate {
				return "", false
			}
			return dateutils.DayKey(c.Date), true
		}},
		{Name: GroupWeekly, Key: func(c *RowContext) (string, bool) {
			// An explicit WEEK column beats any date-derived key, even
			// when a valid date is also present.
			if c.HasWeek {
				return c.Week, true
			}
			if c.HasDate {
				return dateutils.WeekKey(c.Date), true
			}
			return "", false
		}},
	}
	return e
}

// AddGrouping registers an additional grouping table computed in the same
// single pass.
func (e *Engine) AddGrouping(g Grouping) {
	e.groupings = append(e.groupings, g)
}

// Aggregate consumes the record sequence in one pass and produces the
// grouped tables plus running totals. Input records are never mutated, and
// no record can fail the pass: unresolvable fields fall back to documented
// defaults and unparseable dates only exclude the record from the
// date-bucketed tables.
func (e *Engine) Aggregate(records []models.Record) *Result {
	result := &Result{
		Tables:      make(map[string]models.Table, len(e.groupings)),
		UniqueItems: make(map[string]struct{}),
	}
	for _, g := range e.groupings {
		result.Tables[g.Name] = models.Table{}
	}

	for _, rec := range records {
		ctx := e.resolveRow(rec)

		value := e.resolver.Value(rec)
		qty := e.resolver.Qty(rec)

		result.TotalValue = result.TotalValue.Add(value)
		result.TotalQty = result.TotalQty.Add(qty)
		result.Transactions++
		result.UniqueItems[e.resolver.ItemKey(rec)] = struct{}{}

		for _, g := range e.groupings {
			if key, ok := g.Key(ctx); ok {
				result.Tables[g.Name].Add(key, value, qty)
			}
		}
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: result.Transactions},
		logging.Field{Key: "unique_items", Value: result.UniqueItemCount()},
	).Info("Aggregation pass complete")

	return result
}

// resolveRow resolves the per-record fields shared by the grouping rules.
func (e *Engine) resolveRow(rec models.Record) *RowContext {
	ctx := &RowContext{
		Record:      rec,
		Department:  e.resolver.Department(rec),
		Material:    e.resolver.Material(rec),
		Storekeeper: e.resolver.Storekeeper(rec),
	}

	if raw, ok := e.resolver.RawDate(rec); ok {
		if date, parsed := dateutils.Normalize(raw); parsed {
			ctx.Date = date
			ctx.HasDate = true
		} else {
			e.logger.WithField(logging.FieldRawDate, raw).Debug("Unparseable date, excluding record from trend buckets")
		}
	}

	ctx.Week, ctx.HasWeek = e.resolver.Week(rec)
	return ctx
}

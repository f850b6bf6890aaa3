// Package fields resolves normalized values out of raw records whose column
// names vary between source systems. Each logical field has an ordered list
// of acceptable header aliases; the first present, non-empty one wins.
package fields

import (
	"github.com/shopspring/decimal"

	"storeops/issuance-dash/internal/currencyutils"
	"storeops/issuance-dash/internal/models"
)

// Placeholder labels used when no recognized header carries a value.
// Missing categorical fields group under these keys rather than erroring.
const (
	UnknownDepartment  = "Unknown Dept"
	UnknownMaterial    = "Unknown Material"
	UnknownStorekeeper = "Unknown"
)

// Aliases holds the ordered candidate header lists for each logical field.
// Order is priority order and headers match case-sensitively.
type Aliases struct {
	Value       []string `yaml:"value"`
	Qty         []string `yaml:"qty"`
	Date        []string `yaml:"date"`
	Department  []string `yaml:"department"`
	Material    []string `yaml:"material"`
	ItemCode    []string `yaml:"item_code"`
	Storekeeper []string `yaml:"storekeeper"`
	Week        []string `yaml:"week"`
}

// DefaultAliases returns the built-in alias lists covering the known
// issuance export variants.
func DefaultAliases() Aliases {
	return Aliases{
		Value: []string{"Issued Value", "Value"},
		Qty:   []string{"Issued Qty", "Quantity"},
		// "Date " with a trailing space appears in some exports
		Date:        []string{"Issue Date", "Posting Date", "Transaction Date", "Date", "Date "},
		Department:  []string{"DEPARTMENT", "Department"},
		Material:    []string{"Description", "Material Description", "Material", "Item Name"},
		ItemCode:    []string{"Item Code"},
		Storekeeper: []string{"Issued By", "User", "Storekeeper"},
		Week:        []string{"WEEK"},
	}
}

// AllHeaders returns every header name the alias lists recognize, in
// field order. Used for reporting which input columns will be picked up.
func (a Aliases) AllHeaders() []string {
	var all []string
	for _, list := range [][]string{
		a.Value, a.Qty, a.Date, a.Department,
		a.Material, a.ItemCode, a.Storekeeper, a.Week,
	} {
		all = append(all, list...)
	}
	return all
}

// Resolver extracts normalized field values from raw records.
type Resolver struct {
	aliases Aliases
}

// NewResolver returns a Resolver using the given alias lists. Empty lists
// fall back to the defaults.
func NewResolver(aliases Aliases) *Resolver {
	defaults := DefaultAliases()
	if len(aliases.Value) == 0 {
		aliases.Value = defaults.Value
	}
	if len(aliases.Qty) == 0 {
		aliases.Qty = defaults.Qty
	}
	if len(aliases.Date) == 0 {
		aliases.Date = defaults.Date
	}
	if len(aliases.Department) == 0 {
		aliases.Department = defaults.Department
	}
	if len(aliases.Material) == 0 {
		aliases.Material = defaults.Material
	}
	if len(aliases.ItemCode) == 0 {
		aliases.ItemCode = defaults.ItemCode
	}
	if len(aliases.Storekeeper) == 0 {
		aliases.Storekeeper = defaults.Storekeeper
	}
	if len(aliases.Week) == 0 {
		aliases.Week = defaults.Week
	}
	return &Resolver{aliases: aliases}
}

// Aliases returns the effective alias lists after default fill-in.
func (r *Resolver) Aliases() Aliases {
	return r.aliases
}

// Value resolves the issued monetary value. Non-numeric or absent values
// coerce to zero so one bad cell never poisons the accumulators.
func (r *Resolver) Value(rec models.Record) decimal.Decimal {
	raw, ok := rec.First(r.aliases.Value...)
	if !ok {
		return decimal.Zero
	}
	return currencyutils.CoerceAmount(raw)
}

// Qty resolves the issued quantity with the same coercion rules as Value.
func (r *Resolver) Qty(rec models.Record) decimal.Decimal {
	raw, ok := rec.First(r.aliases.Qty...)
	if !ok {
		return decimal.Zero
	}
	return currencyutils.CoerceAmount(raw)
}

// RawDate returns the raw date token, if any recognized date header is
// present. Parsing is the date normalizer's job.
func (r *Resolver) RawDate(rec models.Record) (string, bool) {
	return rec.First(r.aliases.Date...)
}

// Department resolves the issuing department label.
func (r *Resolver) Department(rec models.Record) string {
	if v, ok := rec.First(r.aliases.Department...); ok {
		return v
	}
	return UnknownDepartment
}

// Material resolves the raw material description. This original string is
// the grouping key; display shortening happens downstream.
func (r *Resolver) Material(rec models.Record) string {
	if v, ok := rec.First(r.aliases.Material...); ok {
		return v
	}
	return UnknownMaterial
}

// ItemKey resolves the unique-item identity: the item code when present,
// otherwise the material description. A record is never skipped for lacking
// a code.
func (r *Resolver) ItemKey(rec models.Record) string {
	if v, ok := rec.First(r.aliases.ItemCode...); ok {
		return v
	}
	return r.Material(rec)
}

// Storekeeper resolves who issued the material.
func (r *Resolver) Storekeeper(rec models.Record) string {
	if v, ok := rec.First(r.aliases.Storekeeper...); ok {
		return v
	}
	return UnknownStorekeeper
}

// Week returns the record's explicit week bucket, which takes priority over
// any date-derived week key.
func (r *Resolver) Week(rec models.Record) (string, bool) {
	return rec.First(r.aliases.Week...)
}

// Package models defines the core data structures shared across the
// aggregation pipeline: input records, grouped statistics tables and the
// dashboard report handed to renderers.
package models

// Record is one input row: a mapping from header name to raw cell content.
// Headers are matched case-sensitively. A missing header and an empty cell
// are treated the same by the field resolver.
//
// Records are owned by the aggregation pass and must never be mutated.
type Record map[string]string

// Get returns the trimmed-nothing raw value for a header and whether the
// header is present with a non-empty value.
func (r Record) Get(header string) (string, bool) {
	v, ok := r[header]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// First returns the value of the first candidate header present and
// non-empty in the record, in priority order.
func (r Record) First(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if v, ok := r.Get(c); ok {
			return v, true
		}
	}
	return "", false
}

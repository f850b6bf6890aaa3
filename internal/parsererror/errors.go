// Package parsererror defines the typed errors raised while loading and
// aggregating issuance data files.
package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected tabular format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// EmptyDatasetError represents an input that decodes correctly but contains
// no data rows. The dashboard must not be updated in this case.
type EmptyDatasetError struct {
	FilePath string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no data rows found in file '%s'", e.FilePath)
}

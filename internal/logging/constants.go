package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldSheet      = "sheet"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldGrouping   = "grouping"
	FieldChart      = "chart"
	FieldRecordRow  = "record_row"
	FieldRawDate    = "raw_date"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldFormat     = "format"
)

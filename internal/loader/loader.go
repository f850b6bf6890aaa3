// Package loader reads issuance transaction files (CSV or XLSX) into the
// ordered record sequence the aggregation engine consumes. Quoting,
// escaping and sheet handling are resolved here; schema tolerance is the
// field resolver's job.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
	"storeops/issuance-dash/internal/parsererror"
)

// Dataset is one loaded input file: the header row as found, and one
// Record per non-empty data row in file order.
type Dataset struct {
	Headers []string
	Records []models.Record
}

// Loader reads tabular issuance files.
type Loader struct {
	logger    logging.Logger
	delimiter rune
	sheet     string
}

// New creates a Loader. delimiter applies to CSV input (0 means comma);
// sheet selects the XLSX worksheet (empty means the first sheet).
func New(logger logging.Logger, delimiter rune, sheet string) *Loader {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Loader{logger: logger, delimiter: delimiter, sheet: sheet}
}

// Load reads the file at path, dispatching on its extension. ".xlsx" and
// ".xlsm" go through excelize; everything else is treated as CSV.
func (l *Loader) Load(path string) (*Dataset, error) {
	l.logger.WithField(logging.FieldFile, path).Info("Loading issuance data file")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return l.loadExcel(path)
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening input file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				l.logger.WithError(err).Warn("Failed to close file")
			}
		}()
		return l.LoadCSV(file, path)
	}
}

// LoadCSV reads CSV content from r. path is used for error reporting only.
func (l *Loader) LoadCSV(r io.Reader, path string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.delimiter
	reader.FieldsPerRecord = -1 // allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "CSV with header row",
			Msg:            fmt.Sprintf("cannot read header row: %v", err),
		}
	}
	if len(header) > 0 {
		// Excel exports often carry a UTF-8 BOM on the first header cell
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var records []models.Record
	row := 1
	for {
		cells, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			perr := &parsererror.ParseError{
				Parser: "csv",
				Field:  "row",
				Value:  strconv.Itoa(row),
				Err:    err,
			}
			l.logger.WithError(perr).WithField(logging.FieldRecordRow, row).Warn("Skipping malformed CSV row")
			row++
			continue
		}
		row++

		if rec := mapRow(header, cells); rec != nil {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, &parsererror.EmptyDatasetError{FilePath: path}
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Loaded CSV records")

	return &Dataset{Headers: header, Records: records}, nil
}

// loadExcel reads the configured (or first) worksheet of an XLSX workbook.
func (l *Loader) loadExcel(path string) (*Dataset, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "XLSX workbook",
			Msg:            fmt.Sprintf("cannot open workbook: %v", err),
		}
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			l.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet := l.sheet
	if sheet == "" {
		sheet = workbook.GetSheetName(0)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "XLSX workbook",
			Msg:            fmt.Sprintf("cannot read sheet %q: %v", sheet, err),
		}
	}
	if len(rows) == 0 {
		return nil, &parsererror.EmptyDatasetError{FilePath: path}
	}

	header := rows[0]
	var records []models.Record
	for _, cells := range rows[1:] {
		if rec := mapRow(header, cells); rec != nil {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, &parsererror.EmptyDatasetError{FilePath: path}
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldSheet, Value: sheet},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Loaded XLSX records")

	return &Dataset{Headers: header, Records: records}, nil
}

// mapRow builds a Record from one data row, padding or truncating to the
// header length. Rows whose cells are all empty are dropped, mirroring the
// skip-empty-lines behavior of the upstream exports.
func mapRow(header, cells []string) models.Record {
	if len(cells) < len(header) {
		padded := make([]string, len(header))
		copy(padded, cells)
		cells = padded
	} else if len(cells) > len(header) {
		cells = cells[:len(header)]
	}

	rec := make(models.Record, len(header))
	empty := true
	for i, name := range header {
		if name == "" {
			continue
		}
		rec[name] = cells[i]
		if cells[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil
	}
	return rec
}

// Package validation checks user-supplied paths and options before the
// pipeline touches them, so commands fail with a clear message instead of
// a mid-run error.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supported input extensions, matching what the loader can read
var inputExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
}

// IsValidInputFile checks that the path exists, is a regular file and has
// an extension the loader understands.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path is a directory, not a file: %s", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a regular file: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !inputExtensions[ext] {
		return fmt.Errorf("unsupported input file type %q: expected .csv, .xlsx or .xlsm", ext)
	}
	return nil
}

// IsValidInputDir checks that the path exists and is a directory.
func IsValidInputDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'csv'", format)
	}
}

// Package batch merges issuance exports from a directory into one record
// sequence, so a month split across several weekly export files can feed a
// single dashboard report.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"storeops/issuance-dash/internal/fileutils"
	"storeops/issuance-dash/internal/loader"
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
	"storeops/issuance-dash/internal/validation"
)

// Processor loads and merges every issuance export in a directory.
type Processor struct {
	loader *loader.Loader
	logger logging.Logger
}

// NewProcessor creates a Processor reading files through the given loader.
func NewProcessor(l *loader.Loader, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{loader: l, logger: logger}
}

// Result holds the outcome of one batch merge.
type Result struct {
	Records     []models.Record
	SourceFiles []string // files that loaded, in processing order
	Failed      []string // files that were skipped
}

// DiscoverFiles lists the issuance exports in dir, sorted by name so batch
// runs are deterministic.
func (p *Processor) DiscoverFiles(dir string) ([]string, error) {
	if err := validation.IsValidInputDir(dir); err != nil {
		return nil, err
	}

	files, err := fileutils.ListExportFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no issuance exports (.csv, .xlsx, .xlsm) found in %s", dir)
	}

	p.logger.Info("Discovered issuance exports",
		logging.Field{Key: "dir", Value: dir},
		logging.Field{Key: "file_count", Value: len(files)})
	return files, nil
}

// MergeFiles loads every file and concatenates their records in file
// order. A file that fails to load is skipped with an error log so one bad
// export does not sink the whole batch; it is an error only when nothing
// loads at all.
func (p *Processor) MergeFiles(files []string) (*Result, error) {
	result := &Result{}

	for _, file := range files {
		p.logger.Debug("Processing export", logging.Field{Key: "file", Value: filepath.Base(file)})

		dataset, err := p.loader.Load(file)
		if err != nil {
			p.logger.WithError(err).Error("Failed to load export, skipping",
				logging.Field{Key: "file", Value: file})
			result.Failed = append(result.Failed, file)
			continue
		}

		p.logger.Debug("Loaded records from export",
			logging.Field{Key: "count", Value: len(dataset.Records)},
			logging.Field{Key: "file", Value: filepath.Base(file)})

		result.Records = append(result.Records, dataset.Records...)
		result.SourceFiles = append(result.SourceFiles, file)
	}

	if len(result.SourceFiles) == 0 {
		return nil, fmt.Errorf("none of the %d files could be loaded", len(files))
	}

	p.logger.Info("Merged issuance exports",
		logging.Field{Key: "total_records", Value: len(result.Records)},
		logging.Field{Key: "file_count", Value: len(result.SourceFiles)},
		logging.Field{Key: "failed_count", Value: len(result.Failed)})

	p.detectAndLogDuplicates(result.Records)
	return result, nil
}

// ProcessDir discovers and merges every export in dir.
func (p *Processor) ProcessDir(dir string) (*Result, error) {
	files, err := p.DiscoverFiles(dir)
	if err != nil {
		return nil, err
	}
	return p.MergeFiles(files)
}

// SourceLabel names the merged input for report metadata.
func (r *Result) SourceLabel() string {
	names := make([]string, len(r.SourceFiles))
	for i, file := range r.SourceFiles {
		names[i] = filepath.Base(file)
	}
	return strings.Join(names, "+")
}

// detectAndLogDuplicates warns about rows that repeat across the merged
// files, which usually means two exports overlap. Rows are kept: a repeat
// can also be a genuine second issuance of the same item on the same day.
func (p *Processor) detectAndLogDuplicates(records []models.Record) {
	seen := make(map[string]int, len(records))
	duplicates := 0

	for _, rec := range records {
		key := recordKey(rec)
		seen[key]++
		if seen[key] == 2 {
			duplicates++
		}
	}

	if duplicates > 0 {
		p.logger.Warn("Repeated rows found across merged exports",
			logging.Field{Key: "repeated_rows", Value: duplicates})
	}
}

func recordKey(rec models.Record) string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	// map order is random, so build the key over sorted columns
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(rec[k])
		b.WriteByte('|')
	}
	return b.String()
}

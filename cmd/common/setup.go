// Package common provides shared wiring used by multiple commands.
package common

import (
	"fmt"

	"storeops/issuance-dash/internal/aggregator"
	"storeops/issuance-dash/internal/chartdata"
	"storeops/issuance-dash/internal/config"
	"storeops/issuance-dash/internal/dashboard"
	"storeops/issuance-dash/internal/fields"
	"storeops/issuance-dash/internal/loader"
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
	"storeops/issuance-dash/internal/store"
)

// LoadDataset opens and reads the input file using the configured CSV
// delimiter and XLSX sheet.
func LoadDataset(cfg *config.Config, logger logging.Logger, input string) (*loader.Dataset, error) {
	if input == "" {
		return nil, fmt.Errorf("no input file specified (use --input)")
	}

	delimiter := ','
	if cfg.Input.Delimiter != "" {
		delimiter = []rune(cfg.Input.Delimiter)[0]
	}

	return loader.New(logger, delimiter, cfg.Input.Sheet).Load(input)
}

// NewResolver builds the field resolver, applying any column alias
// overrides from the configured aliases file.
func NewResolver(cfg *config.Config, logger logging.Logger) (*fields.Resolver, error) {
	store.SetLogger(logger)
	aliases, err := store.NewAliasStore(cfg.Aliases.File).LoadAliases()
	if err != nil {
		return nil, fmt.Errorf("error loading column aliases: %w", err)
	}
	return fields.NewResolver(aliases), nil
}

// AggregateFile loads the input file and runs the grouping pass, returning
// the raw aggregation result for commands that do not need chart series.
func AggregateFile(cfg *config.Config, logger logging.Logger, input string) (*aggregator.Result, error) {
	dataset, err := LoadDataset(cfg, logger, input)
	if err != nil {
		return nil, err
	}
	resolver, err := NewResolver(cfg, logger)
	if err != nil {
		return nil, err
	}
	return aggregator.New(resolver, logger).Aggregate(dataset.Records), nil
}

// BuildReport loads the input file and runs the full dashboard pipeline.
func BuildReport(cfg *config.Config, logger logging.Logger, input string) (*models.DashboardReport, error) {
	dataset, err := LoadDataset(cfg, logger, input)
	if err != nil {
		return nil, err
	}
	resolver, err := NewResolver(cfg, logger)
	if err != nil {
		return nil, err
	}

	engine := aggregator.New(resolver, logger)
	preparer := chartdata.NewPreparer(cfg.Display.TopN, cfg.Display.LabelWidth)
	pipeline := dashboard.NewPipeline(engine, preparer, logger)
	return pipeline.BuildReport(input, dataset.Records), nil
}

// Package batch handles the multi-file processing command
package batch

import (
	"github.com/spf13/cobra"

	"storeops/issuance-dash/cmd/common"
	"storeops/issuance-dash/cmd/root"
	"storeops/issuance-dash/internal/aggregator"
	"storeops/issuance-dash/internal/batch"
	"storeops/issuance-dash/internal/chartdata"
	"storeops/issuance-dash/internal/dashboard"
	"storeops/issuance-dash/internal/loader"
	"storeops/issuance-dash/internal/report"
	"storeops/issuance-dash/internal/validation"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of issuance exports into one dashboard report",
	Long: `Batch merges every issuance export (CSV or XLSX) found in the input
directory into a single record set and produces one combined dashboard
report, so a month split across weekly export files can be processed in
one run.`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")
	root.Log.Infof("Input directory: %s", root.SharedFlags.Input)
	root.Log.Infof("Output report file: %s", root.SharedFlags.Output)

	if err := run(cmd); err != nil {
		root.Log.Fatalf("Error processing issuance exports: %v", err)
	}
	root.Log.Info("Batch dashboard report generated successfully!")
}

func run(cmd *cobra.Command) error {
	cfg := root.Config()
	logger := root.GetLogger()

	if err := validation.IsValidOutputFormat(root.SharedFlags.Format); err != nil {
		return err
	}

	delimiter := ','
	if cfg.Input.Delimiter != "" {
		delimiter = []rune(cfg.Input.Delimiter)[0]
	}
	processor := batch.NewProcessor(loader.New(logger, delimiter, cfg.Input.Sheet), logger)

	merged, err := processor.ProcessDir(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	resolver, err := common.NewResolver(cfg, logger)
	if err != nil {
		return err
	}

	engine := aggregator.New(resolver, logger)
	preparer := chartdata.NewPreparer(cfg.Display.TopN, cfg.Display.LabelWidth)
	pipeline := dashboard.NewPipeline(engine, preparer, logger)
	rep := pipeline.BuildReport(merged.SourceLabel(), merged.Records)

	generator := report.NewGenerator(logger)
	return generator.Write(rep, root.SharedFlags.Format, root.SharedFlags.Output, cmd.OutOrStdout())
}

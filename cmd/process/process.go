// Package process handles the full dashboard report command
package process

import (
	"github.com/spf13/cobra"

	"storeops/issuance-dash/cmd/common"
	"storeops/issuance-dash/cmd/root"
	"storeops/issuance-dash/internal/report"
	"storeops/issuance-dash/internal/validation"
)

var chartsDir string

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process an issuance export into a dashboard report",
	Long: `Process reads a material issuance export (CSV or XLSX), aggregates it by
department, material, storekeeper, day and week, and writes the full
dashboard report with KPIs and chart series as JSON or CSV.`,
	Run: processFunc,
}

func init() {
	Cmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory to write one CSV file per chart")
}

func processFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Process command called")
	root.Log.Infof("Input issuance file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output report file: %s", root.SharedFlags.Output)

	if err := run(cmd); err != nil {
		root.Log.Fatalf("Error processing issuance export: %v", err)
	}
	root.Log.Info("Dashboard report generated successfully!")
}

func run(cmd *cobra.Command) error {
	cfg := root.Config()
	logger := root.GetLogger()

	if err := validation.IsValidOutputFormat(root.SharedFlags.Format); err != nil {
		return err
	}
	if root.SharedFlags.Input != "" {
		if err := validation.IsValidInputFile(root.SharedFlags.Input); err != nil {
			return err
		}
	}

	rep, err := common.BuildReport(cfg, logger, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	generator := report.NewGenerator(logger)
	if chartsDir != "" {
		if err := generator.WriteChartFiles(rep, chartsDir); err != nil {
			return err
		}
	}
	return generator.Write(rep, root.SharedFlags.Format, root.SharedFlags.Output, cmd.OutOrStdout())
}

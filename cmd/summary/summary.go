// Package summary handles the KPI summary command
package summary

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"storeops/issuance-dash/cmd/common"
	"storeops/issuance-dash/cmd/root"
	"storeops/issuance-dash/internal/currencyutils"
	"storeops/issuance-dash/internal/kpi"
	"storeops/issuance-dash/internal/models"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the KPI summary for an issuance export",
	Long: `Summary reads a material issuance export (CSV or XLSX), aggregates it,
and prints the dashboard header KPIs in their short display form.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Summary command called")
	root.Log.Infof("Input issuance file: %s", root.SharedFlags.Input)

	if err := run(cmd); err != nil {
		root.Log.Fatalf("Error computing summary: %v", err)
	}
}

func run(cmd *cobra.Command) error {
	cfg := root.Config()
	logger := root.GetLogger()

	result, err := common.AggregateFile(cfg, logger, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	formatter := currencyutils.NewFormatter(cfg.Display.CurrencyMarker, cfg.Display.UnitMarker)
	printSummary(cmd.OutOrStdout(), kpi.Compute(result), formatter)
	return nil
}

func printSummary(w io.Writer, s models.Summary, f *currencyutils.Formatter) {
	fmt.Fprintf(w, "Unique Items Issued:  %d\n", s.UniqueItems)
	fmt.Fprintf(w, "Total Quantity:       %s\n", f.Short(s.TotalQty, false))
	fmt.Fprintf(w, "Total Value:          %s\n", f.Short(s.TotalValue, true))
	fmt.Fprintf(w, "Transactions:         %d\n", s.Transactions)
	fmt.Fprintf(w, "Moving Items:         %d\n", s.MovingItems)
	fmt.Fprintf(w, "Non-Moving Items:     %d\n", s.NonMovingItems)
	fmt.Fprintf(w, "Avg Daily Value:      %s\n", f.Short(s.AvgDailyValue, true))
	fmt.Fprintf(w, "Avg Daily Quantity:   %s\n", f.Short(s.AvgDailyQty, false))
	fmt.Fprintf(w, "Highest Daily Value:  %s\n", f.Short(s.HighDailyValue, true))
	fmt.Fprintf(w, "Lowest Daily Value:   %s\n", f.Short(s.LowDailyValue, true))
}

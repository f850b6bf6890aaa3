// Package validate handles the input inspection command
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"storeops/issuance-dash/cmd/common"
	"storeops/issuance-dash/cmd/root"
	"storeops/issuance-dash/internal/fields"
	"storeops/issuance-dash/internal/loader"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Inspect an issuance export before processing",
	Long: `Validate reads a material issuance export (CSV or XLSX) and reports how
many records it holds and which of its columns map to known fields, so
unrecognized headers can be added to the alias override file.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Validate command called")
	root.Log.Infof("Input issuance file: %s", root.SharedFlags.Input)

	if err := run(cmd); err != nil {
		root.Log.Fatalf("Error validating issuance export: %v", err)
	}
}

func run(cmd *cobra.Command) error {
	cfg := root.Config()
	logger := root.GetLogger()

	dataset, err := common.LoadDataset(cfg, logger, root.SharedFlags.Input)
	if err != nil {
		return err
	}
	resolver, err := common.NewResolver(cfg, logger)
	if err != nil {
		return err
	}

	printValidation(cmd.OutOrStdout(), root.SharedFlags.Input, dataset, resolver.Aliases())
	return nil
}

func printValidation(w io.Writer, input string, dataset *loader.Dataset, aliases fields.Aliases) {
	known := make(map[string]bool)
	for _, header := range aliases.AllHeaders() {
		known[header] = true
	}

	var recognized, unrecognized []string
	for _, header := range dataset.Headers {
		if known[header] {
			recognized = append(recognized, header)
		} else {
			unrecognized = append(unrecognized, header)
		}
	}

	fmt.Fprintf(w, "File:                 %s\n", input)
	fmt.Fprintf(w, "Records:              %d\n", len(dataset.Records))
	fmt.Fprintf(w, "Columns:              %d\n", len(dataset.Headers))
	fmt.Fprintf(w, "Recognized columns:   %d\n", len(recognized))
	for _, header := range recognized {
		fmt.Fprintf(w, "  - %s\n", header)
	}
	fmt.Fprintf(w, "Unrecognized columns: %d\n", len(unrecognized))
	for _, header := range unrecognized {
		fmt.Fprintf(w, "  - %s\n", header)
	}
}

package process_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"storeops/issuance-dash/cmd/process"
	"storeops/issuance-dash/cmd/root"
)

func TestProcessCommand_Metadata(t *testing.T) {
	assert.Equal(t, "process", process.Cmd.Use)
	assert.Contains(t, process.Cmd.Short, "dashboard report")
	assert.Contains(t, process.Cmd.Long, "aggregates")
	assert.NotNil(t, process.Cmd.Run)
}

func TestProcessCommand_ChartsDirFlag(t *testing.T) {
	flag := process.Cmd.Flags().Lookup("charts-dir")

	assert.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestProcessCommand_RunSignature(t *testing.T) {
	assert.IsType(t, func(*cobra.Command, []string) {}, process.Cmd.Run)
}

func TestProcessCommand_SharedFlagsIntegration(t *testing.T) {
	originalInput := root.SharedFlags.Input
	originalFormat := root.SharedFlags.Format
	defer func() {
		root.SharedFlags.Input = originalInput
		root.SharedFlags.Format = originalFormat
	}()

	root.SharedFlags.Input = "issuance.xlsx"
	root.SharedFlags.Format = "csv"

	assert.Equal(t, "issuance.xlsx", root.SharedFlags.Input)
	assert.Equal(t, "csv", root.SharedFlags.Format)
}

// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"storeops/issuance-dash/internal/config"
	"storeops/issuance-dash/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "issuance-dash",
		Short: "Aggregate material issuance exports into dashboard statistics.",
		Long: `issuance-dash ingests a material issuance transaction file (CSV or XLSX),
normalizes its inconsistent columns and dates, and produces grouped
statistics, KPIs and chart-ready series for the stores dashboard.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to issuance-dash!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetDefault(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (CSV or XLSX)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when omitted)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "json", "Report format: json or csv")
}

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Config returns the loaded configuration, initializing it on first use so
// commands can run outside the cobra lifecycle in tests.
func Config() *config.Config {
	if Cfg == nil {
		cfg, err := config.InitializeConfig()
		if err != nil {
			Log.Fatalf("Failed to initialize configuration: %v", err)
		}
		Cfg = cfg
	}
	return Cfg
}

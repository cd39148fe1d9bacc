package cmd

import (
	"fmt"
	"os"

	"loanable-inventory/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running it with no arguments generates the report.
var RootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Weekly loanable equipment inventory report",
	Long: `Inventory fetches the equipment catalog and live checkout status from LibCal,
merges them, and writes a dated CSV and Excel report to the output directory.
Report files older than the retention window are deleted afterwards.`,
	Args:          cobra.NoArgs,
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps and an ERROR marker
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println("ERROR:", err)
		}
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"loanable-inventory/core/config"
	"loanable-inventory/core/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// sweepCmd runs only the retention sweep. It needs no LibCal credentials.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete report files older than the retention window",
	Args:  cobra.NoArgs,
	RunE:  runSweep,
}

func init() {
	RootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := validateSweepConfig(cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l, _ = logger.WithRunID(l)

	return sweepOutput(afero.NewOsFs(), cfg, l)
}

// validateSweepConfig checks the sections the sweep uses, in a fixed order so
// the first invalid section is always the one reported.
func validateSweepConfig(cfg *config.Config) error {
	sections := []struct {
		prefix  string
		section any
	}{
		{"report", cfg.Report},
		{"retention", cfg.Retention},
		{"log", cfg.Log},
	}
	for _, s := range sections {
		if err := config.ValidateSection(s.prefix, s.section); err != nil {
			return err
		}
	}
	return nil
}

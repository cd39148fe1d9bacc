package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loanable-inventory/core/config"
	"loanable-inventory/core/libcal"
	"loanable-inventory/core/logger"
	"loanable-inventory/core/retention"
	"loanable-inventory/core/storage"
	"loanable-inventory/feature/inventory"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd generates the report; it is what the root command runs.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the inventory report and prune old files",
	Long: `Authenticate to LibCal, fetch equipment items and checkout status,
reconcile them, and write <date>_Loanable_Inventory.csv and .xlsx.
Files in the output directory older than RETENTION_DAYS are then deleted.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credentials are validated here, before any network call
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l, _ = logger.WithRunID(l)

	today := time.Now()
	l.Info("MMCL Weekly Equipment Inventory Report", zap.String("date", today.Format(inventory.DateLayout)))

	client, err := libcal.NewClient(cfg.LibCal)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()

	publisher, err := newPublisher(cfg.Storage, fs, l)
	if err != nil {
		return err
	}

	svc := inventory.NewService(
		inventory.NewLibCalSource(client),
		inventory.NewExporter(fs, cfg.Report.OutputDir, l),
		publisher,
		l,
	).WithClock(func() time.Time { return today })

	if _, err := svc.Run(ctx); err != nil {
		return err
	}

	if err := sweepOutput(fs, cfg, l); err != nil {
		return err
	}

	l.Info("Report generation complete")
	return nil
}

// newPublisher returns nil when publishing is disabled.
func newPublisher(cfg storage.Config, fs afero.Fs, l *zap.Logger) (*inventory.Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return inventory.NewPublisher(client, cfg, fs, l), nil
}

// sweepOutput prunes old files. Deletion failures are warnings unless
// retention.strict is set.
func sweepOutput(fs afero.Fs, cfg *config.Config, l *zap.Logger) error {
	res, err := retention.NewSweeper(fs, cfg.Retention.Days, l).Sweep(cfg.Report.OutputDir)
	if err != nil {
		return fmt.Errorf("retention sweep failed: %w", err)
	}
	if res.Err != nil {
		if cfg.Retention.Strict {
			return fmt.Errorf("retention sweep failed: %w", res.Err)
		}
		l.Warn("Some old files could not be deleted",
			zap.Int("failed", len(res.Failed)),
			zap.Error(res.Err),
		)
	}
	return nil
}

package inventory

import (
	"context"
	"fmt"
	"time"

	"loanable-inventory/core/reconcile"
	"loanable-inventory/feature/inventory/models"
	equipment "loanable-inventory/feature/inventory/reconcile"

	"go.uber.org/zap"
)

// Report summarises one run.
type Report struct {
	Date       time.Time
	Files      Files
	Rows       int
	CheckedOut int
	Available  int
	Merge      reconcile.Summary
}

// Service builds the weekly inventory report.
type Service struct {
	source    Source
	exporter  *Exporter
	publisher *Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new inventory service. publisher may be nil.
func NewService(source Source, exporter *Exporter, publisher *Publisher, logger *zap.Logger) *Service {
	return &Service{
		source:    source,
		exporter:  exporter,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for file and sheet names.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run authenticates, fetches, reconciles, projects and exports, in that order.
// Any failure aborts the run; there is no partial output.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	date := s.now()

	s.logger.Info("Authenticating with LibCal API")
	if err := s.source.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	s.logger.Info("Authentication successful")

	s.logger.Info("Fetching equipment items")
	items, err := s.source.FetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment items: %w", err)
	}
	s.logger.Info("Retrieved equipment items", zap.Int("count", len(items)))

	s.logger.Info("Fetching equipment checkout status")
	statuses, err := s.source.FetchStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment status: %w", err)
	}
	s.logger.Info("Retrieved equipment status records", zap.Int("count", len(statuses)))

	s.logger.Info("Merging datasets")
	rec, err := equipment.Reconcile(items, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to merge datasets: %w", err)
	}
	s.logMerge(rec.Summary)

	rows := Project(rec.Results)
	report := &Report{Date: date, Rows: len(rows), Merge: rec.Summary}
	for _, r := range rows {
		if r.CheckoutStatus == models.CheckedOut {
			report.CheckedOut++
		} else {
			report.Available++
		}
	}
	s.logger.Info("Merge complete",
		zap.Int("items", report.Rows),
		zap.Int("checked_out", report.CheckedOut),
		zap.Int("available", report.Available),
	)

	files, err := s.exporter.Export(rows, date)
	if err != nil {
		return nil, fmt.Errorf("failed to export report: %w", err)
	}
	report.Files = files
	s.logger.Info("Files saved successfully")

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, files.Paths()...); err != nil {
			return nil, fmt.Errorf("failed to publish report: %w", err)
		}
	}

	return report, nil
}

func (s *Service) logMerge(sum reconcile.Summary) {
	if sum.FallbackMatches+sum.Unmatched > 0 {
		s.logger.Warn("Items did not match by ID, used barcode match",
			zap.Int("unmatched_by_id", sum.FallbackMatches+sum.Unmatched),
			zap.Int("matched_by_barcode", sum.FallbackMatches),
			zap.Int("unmatched", sum.Unmatched),
		)
	}
	if len(sum.DuplicatePrimaryKeys) > 0 {
		s.logger.Warn("Duplicate equipment ids in status data, first record used",
			zap.Strings("eids", sum.DuplicatePrimaryKeys),
		)
	}
	if len(sum.DuplicateFallbackKeys) > 0 {
		s.logger.Warn("Duplicate barcodes in status data, first record used",
			zap.Strings("barcodes", sum.DuplicateFallbackKeys),
		)
	}
}

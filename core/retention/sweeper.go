package retention

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result summarises a sweep.
type Result struct {
	// Cutoff is the instant files had to be older than to be deleted.
	Cutoff time.Time
	// Deleted lists the names of removed files.
	Deleted []string
	// Failed lists the names of files that could not be removed.
	Failed []string
	// Err combines the deletion errors, nil when Failed is empty.
	Err error
}

// Sweeper deletes files older than a threshold from a directory.
type Sweeper struct {
	fs        afero.Fs
	threshold time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewSweeper creates a sweeper removing files older than days.
func NewSweeper(fs afero.Fs, days int, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		fs:        fs,
		threshold: time.Duration(days) * 24 * time.Hour,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock replaces the time source, for tests.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// Sweep deletes direct files in dir whose modification time is strictly
// before now minus the threshold. Subdirectories are left alone.
//
// A directory that cannot be listed is an error. Files that cannot be
// deleted do not stop the sweep; they are reported in Result.Failed and
// Result.Err and the caller decides whether that is fatal.
func (s *Sweeper) Sweep(dir string) (Result, error) {
	res := Result{Cutoff: s.now().Add(-s.threshold)}

	s.logger.Info("Checking for old report files",
		zap.String("dir", dir),
		zap.Int("days", int(s.threshold/(24*time.Hour))),
	)

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("No old files found to delete.")
			return res, nil
		}
		return res, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !entry.ModTime().Before(res.Cutoff) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := s.fs.Remove(path); err != nil {
			s.logger.Warn("Failed to delete old file", zap.String("file", entry.Name()), zap.Error(err))
			res.Failed = append(res.Failed, entry.Name())
			res.Err = multierr.Append(res.Err, fmt.Errorf("delete %s: %w", path, err))
			continue
		}

		s.logger.Info("Deleted old file",
			zap.String("file", entry.Name()),
			zap.String("modified", entry.ModTime().Format("2006-01-02")),
		)
		res.Deleted = append(res.Deleted, entry.Name())
	}

	if len(res.Deleted) == 0 {
		s.logger.Info("No old files found to delete.")
	} else {
		s.logger.Info("Deleted old files", zap.Int("count", len(res.Deleted)))
	}

	return res, nil
}

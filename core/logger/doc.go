// Package logger provides a structured logging facility based on Zap.
//
// Two encodings are supported: a human-readable console encoding, which is the
// default for interactive and scheduled runs, and JSON for log shippers. Both
// write to standard output.
//
// # Run correlation
//
// WithRunID attaches a random run_id (UUID v4) to the logger. The report command
// does this once at startup so all progress lines of one run share the same id.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Report started", zap.String("run_id", runID))
package logger

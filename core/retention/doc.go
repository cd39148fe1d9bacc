// Package retention prunes old report files from the output directory.
//
// The sweep looks only at direct children of the directory, skips
// subdirectories, and deletes a file when its modification time is strictly
// older than now minus the configured number of days (90 by default).
// Filesystem access goes through afero so the sweep runs unchanged against
// an in-memory filesystem in tests.
package retention

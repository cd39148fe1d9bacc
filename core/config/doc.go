// Package config provides configuration management for the inventory report.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, with defaults declared in `default` struct tags and rules
// in `validate` struct tags (go-playground/validator).
//
// # Configuration Structure
//
// The Config struct is divided into subsections, each owned by the package that uses it:
//   - LibCal: API base URL, location id, OAuth client id and secret
//   - Report: output directory
//   - Retention: sweep threshold in days and failure policy
//   - Log: logging level and format
//   - Storage: optional S3/MinIO publishing
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores, so libcal.client_id is read from LIBCAL_CLIENT_ID.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.LibCal.LocationID)
package config

// Package config provides configuration management for hogger.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live in `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Database: world database connection (DATABASE_HOST, DATABASE_NAME, ...)
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and the bucket holding shared manifests
//   - Server: status server port and API key
//   - Manifest: default manifest path or bucket prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	db, err := database.Connect(cfg.Database)
package config

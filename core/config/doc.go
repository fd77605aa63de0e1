// Package config provides configuration management for the econ CDN service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials and the bucket holding catalog files and assets
//   - Log: Logging level and format
//   - Database: optional miss log database (mysql or sqlite)
//   - Catalog: catalog object names and refresh interval
//   - Assets: CDN base URL and asset byte cache
//   - Features: asset category toggles
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.RefreshInterval())
package config

// Package config provides configuration management for the Products API.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, JWT secret, token lifetime)
//   - Database: MySQL connection details (sqlite supported for tests)
//   - Storage: S3/MinIO credentials for raw payload archival (optional)
//   - Log: Logging level and format
//   - Sync: External provider and scheduler settings
//
// Defaults come from `default` struct tags; environment variables map onto
// nested keys with underscores (e.g. SYNC_PROVIDER_BASE_URL -> sync.provider.base_url).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

// Package config provides configuration management for the storage manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Storage: backend provider, project id, default bucket, credentials
//   - Log: logging level and format
//
// Environment variables map onto nested keys with underscores, so
// STORAGE_DEFAULT_BUCKET sets storage.default_bucket. The project id
// additionally falls back to GOOGLE_CLOUD_PROJECT_ID when unset.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.DefaultBucket)
package config

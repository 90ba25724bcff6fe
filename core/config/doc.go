// Package config provides configuration management for lynx-bridge.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// config.yaml next to it, and environment variables.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Output: EVT file encoding
//   - Backup: whether and where the EVT file is copied before a rewrite
//   - Races: group suffixes to trim, the distance to lap table and a lap override
//   - Log: logging level and format
//   - History: update journal database
//   - Metrics: Prometheus textfile path
//
// Defaults come from the `default` struct tags. Environment variables use the
// upper-cased key with dots replaced by underscores, e.g. OUTPUT_ENCODING or
// RACES_TRIM_SUFFIXES=male,female,mixed.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Encoding)
package config

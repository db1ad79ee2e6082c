// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env loading, and caches each successfully
// loaded configuration type so it is parsed at most once per process.
//
// # Usage
//
//	type MiddlewareConfig struct {
//	    LogDetections bool `env:"CLIENTINFO_LOG_DETECTIONS" envDefault:"false"`
//	}
//
//	var cfg MiddlewareConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Repeated Load calls for the same type return the cached copy, which keeps
// per-request construction paths cheap.
package config

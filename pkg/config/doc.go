// Package config loads application configuration from environment variables
// into typed structs.
//
// It combines github.com/joho/godotenv (optional .env file support) with
// github.com/caarlos0/env/v11 (struct tag parsing) and caches each parsed
// configuration type for the lifetime of the process.
//
// Usage:
//
//	type HTTPConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
package config

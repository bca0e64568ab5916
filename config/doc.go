// Package config loads utilkit configuration with Viper.
//
// LoadConfig reads an explicit or discovered config.yml, loads a .env file
// and lets environment variables override file keys. With an env prefix
// (WithEnvPrefix("UTILKIT")) only prefixed variables are bound, so
// UTILKIT_LOGGING_PREFIX sets logging.prefix.
//
// # Usage
//
//	cfg := config.ServiceConfig{Name: "utilkit"}
//	err := config.LoadConfig("utilkit", &cfg, config.WithEnvPrefix("UTILKIT"))
package config

package app

import (
	"os"
	"strconv"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// StoragePath is the directory where settings and profiles are stored
	StoragePath string

	// Profile is the name of the saved profile to load; empty loads the
	// built-in demo profile
	Profile string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		StoragePath: "", // Will use DefaultStoragePath() from storage package
		Profile:     "",
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// Reads EXPANDER_DEBUG, EXPANDER_STORAGE_PATH and EXPANDER_PROFILE.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("EXPANDER_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if storagePath := os.Getenv("EXPANDER_STORAGE_PATH"); storagePath != "" {
		cfg.StoragePath = storagePath
	}

	if profile := os.Getenv("EXPANDER_PROFILE"); profile != "" {
		cfg.Profile = profile
	}

	return cfg
}

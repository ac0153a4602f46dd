package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envDatabasePath = "KFIT_DATABASE_PATH"
	envStorageKey   = "KFIT_STORAGE_KEY"
	envLatency      = "KFIT_LATENCY"
	envLogLevel     = "KFIT_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the dotenv file (if it exists) and
// the process environment. A missing dotenv file is not an error.
func parseEnv(cfg *Config, dotenv string) error {
	fileVars := map[string]string{}
	if dotenv != "" {
		m, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			fileVars = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read %s: %w", dotenv, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(envStorageKey); ok && v != "" {
		cfg.StorageKey = v
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLatency); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envLatency, err)
		}
		cfg.Latency = d
	}
	return nil
}

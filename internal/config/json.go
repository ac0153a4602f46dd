package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/kfitness/internal/flagx"
	"github.com/dmitrijs2005/kfitness/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty" so absent keys leave cfg alone.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	StorageKey   *string         `json:"storage_key"`
	Latency      *timex.Duration `json:"latency"`
	LogLevel     *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without either flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.StorageKey != nil {
		cfg.StorageKey = *jc.StorageKey
	}
	if jc.Latency != nil {
		cfg.Latency = jc.Latency.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}

package config

import "time"

// Config holds runtime settings for the kfit CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the user blob.
//   - StorageKey: key of the blob inside the metadata table.
//   - Latency: artificial delay applied before every directory operation.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabasePath string
	StorageKey   string
	Latency      time.Duration
	LogLevel     string
}

// DefaultStorageKey is the key the user blob is stored under.
const DefaultStorageKey = "k-fitness-users"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "kfitness.db"
	c.StorageKey = DefaultStorageKey
	c.Latency = 0
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the .env file and environment, then the
// JSON file named by -c/-config, then command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

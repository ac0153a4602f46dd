package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/flagx"
)

// parseFlags populates cfg from the flags it owns (-d, -k, -l, -v); other
// arguments are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	owned := flagx.FilterArgs(args, []string{"-d", "-k", "-l", "-v"})

	fs := flag.NewFlagSet("kfit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "storage key of the user blob")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")
	latency := fs.Int("l", int(cfg.Latency.Milliseconds()), "simulated latency per operation (milliseconds)")

	if err := fs.Parse(owned); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "l" {
			cfg.Latency = time.Duration(*latency) * time.Millisecond
		}
	})
	return nil
}

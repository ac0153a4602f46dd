// Package config loads runtime configuration for the kfit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory (github.com/joho/godotenv) and the
//     process environment, which wins over the file:
//     KFIT_DATABASE_PATH, KFIT_STORAGE_KEY, KFIT_LATENCY, KFIT_LOG_LEVEL.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-k string   storage key of the user blob
//	-l int      simulated latency per operation (milliseconds)
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "database_path": "kfitness.db",
//	  "storage_key": "k-fitness-users",
//	  "latency": "300ms",
//	  "log_level": "debug"
//	}
package config

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Storage StorageConfig
	Logging LoggingConfig
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend string // file|sqlite
	Path    string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// Supported storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	defaultBackend      = BackendFile
	defaultFilePath     = "addressbook.json"
	defaultSQLitePath   = "addressbook.db"
	defaultLoggingLevel = "info"
	defaultLogFormat    = "text"
)

// Load reads configuration from the environment, applying defaults. A .env
// file in the working directory is honoured when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Storage: StorageConfig{
			Backend: valueOrDefault("ADDRESSBOOK_BACKEND", defaultBackend),
			Path:    os.Getenv("ADDRESSBOOK_PATH"),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLogFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.Path == "" {
			cfg.Storage.Path = defaultFilePath
		}
	case BackendSQLite:
		if cfg.Storage.Path == "" {
			cfg.Storage.Path = defaultSQLitePath
		}
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q (expected %s or %s)",
			cfg.Storage.Backend, BackendFile, BackendSQLite)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

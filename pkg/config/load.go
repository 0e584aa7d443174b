package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrUnknownDriver is returned when STORE_DRIVER names no supported store.
	ErrUnknownDriver = errors.New("unknown store driver")
	// ErrMissingStoreURL is returned when the selected store has no connection string.
	ErrMissingStoreURL = errors.New("store connection string is not set")
)

// Load reads the configuration from the environment after loading the
// first env file found among envFilePath (or .env when none is given).
// Variables already set in the process environment win over the file.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	path, err := FindEnvFile(envFilePath...)
	if err != nil {
		logger.Info("No environment file found, using process environment", "candidates", envFilePath)
		return loadFromEnv()
	}
	logger.Info("Loading environment from file", "path", path)
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"store_driver", cfg.Store.Driver,
		"db", maskValue(cfg.DB.Url),
		"mongo_uri", maskValue(cfg.Mongo.URI),
		"mongo_database", cfg.Mongo.Database,
		"jwt_enabled", cfg.Auth.Jwt.Secret != "",
	)
	return &cfg, nil
}

// Validate checks that the selected store can be reached.
func (a *App) Validate() error {
	switch a.Store.Driver {
	case DriverPostgres:
		if a.DB.Url == "" {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingStoreURL)
		}
	case DriverMongo:
		if a.Mongo.URI == "" {
			return fmt.Errorf("%w: MONGO_URI", ErrMissingStoreURL)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, a.Store.Driver)
	}
	return nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}

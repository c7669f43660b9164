package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ligasmart/ligasmart/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config stores runtime configuration for the application.
type Config struct {
	AppEnv      string
	ServiceName string
	DataPath    string
	SeedDemo    bool
	LogLevel    logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataPath := strings.TrimSpace(getEnv("LIGASMART_DATA", ""))
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataPath = filepath.Join(home, ".ligasmart", "store.json")
	}

	seedDemo, err := strconv.ParseBool(getEnv("LIGASMART_SEED_DEMO", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIGASMART_SEED_DEMO: %w", err)
	}

	logLevel, err := logging.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	return Config{
		AppEnv:      appEnv,
		ServiceName: getEnv("SERVICE_NAME", "ligasmart"),
		DataPath:    dataPath,
		SeedDemo:    seedDemo,
		LogLevel:    logLevel,
	}, nil
}

func parseAppEnv(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case EnvDev:
		return EnvDev, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV: %q", value)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

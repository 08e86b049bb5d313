package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ScenePath string
	DataPath  string
	OutputDir string

	MaxConcurrent int

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	cfg := Config{
		ScenePath:     getEnv("ADSTENCIL_SCENES", "scene.json"),
		DataPath:      strings.TrimSpace(os.Getenv("ADSTENCIL_DATA")),
		OutputDir:     getEnv("ADSTENCIL_OUTPUT_DIR", "out"),
		MaxConcurrent: getEnvInt("ADSTENCIL_MAX_CONCURRENT", 1),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, errors.New("LOG_FORMAT must be text or json")
	}

	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

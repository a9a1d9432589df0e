// Package config loads server settings in layers: built-in defaults, an optional YAML
// file, then environment variables (a local .env file is folded into the environment
// first). Later layers win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the YAML file location.
const PathEnvVar = "CONFIG_PATH"

// DefaultPaths are searched in order when PathEnvVar is unset.
var DefaultPaths = []string{"config.yaml", "config.yml"}

// Config holds every tunable of the server.
type Config struct {
	Port            int           `koanf:"port"             validate:"min=1,max=65535"`
	LogLevel        string        `koanf:"log_level"        validate:"oneof=debug info warn error"`
	CORSOrigins     string        `koanf:"cors_origins"     validate:"required"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"   validate:"min=1"`
	AuthRateLimit   int           `koanf:"auth_rate_limit"  validate:"min=0"`
	AuthRateWindow  time.Duration `koanf:"auth_rate_window" validate:"min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Port:            5000,
		LogLevel:        "info",
		CORSOrigins:     "*",
		MaxBodyBytes:    1 << 20,
		AuthRateLimit:   20,
		AuthRateWindow:  time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// envKeys maps recognised environment variables to config keys. Anything else in the
// environment is ignored.
var envKeys = map[string]string{
	"PORT":             "port",
	"LOG_LEVEL":        "log_level",
	"CORS_ORIGINS":     "cors_origins",
	"MAX_BODY_BYTES":   "max_body_bytes",
	"AUTH_RATE_LIMIT":  "auth_rate_limit",
	"AUTH_RATE_WINDOW": "auth_rate_window",
	"SHUTDOWN_TIMEOUT": "shutdown_timeout",
}

func envTransform(key string) string {
	return envKeys[strings.ToUpper(key)]
}

// Load builds the configuration and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func findFile() string {
	if path := os.Getenv(PathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

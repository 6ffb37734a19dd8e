package app

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/saadjs/lifelog/internal/ai"
	"github.com/saadjs/lifelog/internal/storage"
)

const DefaultAITimeout = 30 * time.Second

const (
	EnvDBPath    = "LIFELOG_DB"
	EnvAIURL     = "LIFELOG_AI_URL"
	EnvAITimeout = "LIFELOG_AI_TIMEOUT"
	EnvLogLevel  = "LIFELOG_LOG_LEVEL"
	EnvFoodDBURL = "LIFELOG_FOOD_DB_URL"
)

// Config is the resolved runtime configuration. An empty FoodDBEndpoint uses
// the public Open Food Facts instance.
type Config struct {
	DBPath         string
	AIEndpoint     string
	AITimeout      time.Duration
	LogLevel       string
	FoodDBEndpoint string
}

type fileConfig struct {
	DB             string `yaml:"db"`
	AIEndpoint     string `yaml:"ai_endpoint"`
	AITimeout      string `yaml:"ai_timeout"`
	LogLevel       string `yaml:"log_level"`
	FoodDBEndpoint string `yaml:"food_db_endpoint"`
}

func DefaultConfig() Config {
	return Config{
		AIEndpoint: ai.DefaultBaseURL,
		AITimeout:  DefaultAITimeout,
		LogLevel:   "warn",
	}
}

// LoadConfig layers defaults, the YAML file at path, a .env file in the
// working directory and LIFELOG_* environment variables, in that order. An
// empty path falls back to the default config location, where a missing
// file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.DB != "" {
		c.DBPath = fc.DB
	}
	c.mergeFoodDB(fc.FoodDBEndpoint)
	return c.merge(fc.AIEndpoint, fc.AITimeout, fc.LogLevel)
}

func (c *Config) mergeEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		c.DBPath = v
	}
	c.mergeFoodDB(os.Getenv(EnvFoodDBURL))
	return c.merge(os.Getenv(EnvAIURL), os.Getenv(EnvAITimeout), os.Getenv(EnvLogLevel))
}

// ApplyStored overrides endpoint and logging settings with values saved through
// `config set`.
func (c *Config) ApplyStored(db *sql.DB) error {
	stored, err := storage.ListConfig(db)
	if err != nil {
		return err
	}
	c.mergeFoodDB(stored[storage.ConfigFoodDBURL])
	return c.merge(stored[storage.ConfigAIEndpoint], stored[storage.ConfigAITimeout], stored[storage.ConfigLogLevel])
}

func (c *Config) mergeFoodDB(endpoint string) {
	if v := strings.TrimSpace(endpoint); v != "" {
		c.FoodDBEndpoint = v
	}
}

func (c *Config) merge(endpoint, timeout, level string) error {
	if v := strings.TrimSpace(endpoint); v != "" {
		c.AIEndpoint = v
	}
	if v := strings.TrimSpace(timeout); v != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			return err
		}
		c.AITimeout = d
	}
	if v := strings.TrimSpace(level); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

func ParseTimeout(value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid ai timeout %q (expected a duration like 30s)", value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("ai timeout must be > 0")
	}
	return d, nil
}

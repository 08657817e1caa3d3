package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Favorites backends.
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds runtime settings. Precedence, lowest first: defaults, YAML
// file, .env file and environment, command-line flags.
type Config struct {
	Addr      string          `yaml:"addr"`
	AssetDir  string          `yaml:"asset_dir"`
	DBPath    string          `yaml:"db"`
	LogPath   string          `yaml:"log"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Token     TokenConfig     `yaml:"token"`
}

type FavoritesConfig struct {
	Backend     string      `yaml:"backend"`
	Redis       RedisConfig `yaml:"redis"`
	PostgresURL string      `yaml:"postgres_url"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type TokenConfig struct {
	// Secret signs editor tokens. Empty means a secret generated once and
	// kept in the SQLite settings table.
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:   ":8080",
		DBPath: "kultur.sqlite3",
		Favorites: FavoritesConfig{
			Backend: BackendSQLite,
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "kultur:favorites",
			},
		},
		Token: TokenConfig{TTL: 30 * 24 * time.Hour},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty), a .env file in the working directory if present, and
// KULTUR_* environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"KULTUR_ADDR":              &cfg.Addr,
		"KULTUR_ASSET_DIR":         &cfg.AssetDir,
		"KULTUR_DB":                &cfg.DBPath,
		"KULTUR_LOG":               &cfg.LogPath,
		"KULTUR_FAVORITES_BACKEND": &cfg.Favorites.Backend,
		"KULTUR_REDIS_ADDR":        &cfg.Favorites.Redis.Addr,
		"KULTUR_REDIS_PASSWORD":    &cfg.Favorites.Redis.Password,
		"KULTUR_REDIS_KEY":         &cfg.Favorites.Redis.Key,
		"KULTUR_POSTGRES_URL":      &cfg.Favorites.PostgresURL,
		"KULTUR_TOKEN_SECRET":      &cfg.Token.Secret,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	if v, ok := lookup("KULTUR_REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KULTUR_REDIS_DB: %w", err)
		}
		cfg.Favorites.Redis.DB = n
	}
	if v, ok := lookup("KULTUR_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KULTUR_TOKEN_TTL: %w", err)
		}
		cfg.Token.TTL = d
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Token.TTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}

	switch c.Favorites.Backend {
	case BackendSQLite:
	case BackendRedis:
		if strings.TrimSpace(c.Favorites.Redis.Addr) == "" {
			return fmt.Errorf("redis addr is required for the redis backend")
		}
		if c.Favorites.Redis.DB < 0 {
			return fmt.Errorf("redis db must not be negative")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.Favorites.PostgresURL) == "" {
			return fmt.Errorf("postgres_url is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown favorites backend: %q", c.Favorites.Backend)
	}
	return nil
}

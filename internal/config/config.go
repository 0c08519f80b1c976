// Package config loads application settings from the environment, an optional
// .env file and an optional config.yaml, using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"jaktrip/internal/planner"
	"jaktrip/pkg/logger"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

type ServerConfig struct {
	Environment    Environment `mapstructure:"environment" yaml:"environment"`
	Port           string      `mapstructure:"port" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	URL          string        `mapstructure:"url" yaml:"url"`
	MaxOpenConns int           `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLife  time.Duration `mapstructure:"conn_max_life" yaml:"conn_max_life"`
	AutoMigrate  bool          `mapstructure:"auto_migrate" yaml:"auto_migrate"`
	SeedSamples  bool          `mapstructure:"seed_samples" yaml:"seed_samples"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Planner  planner.Tuning `mapstructure:"planner" yaml:"planner"`
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig reads .env (if present), environment variables and an optional
// config.yaml from CONFIG_PATH or the working directory. Planner tuning keys
// that are not set keep their stock values.
func LoadConfig() (*Config, error) {
	log := logger.GetLogger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnw("Failed to read .env file", "error", err)
	}

	v := viper.New()
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_life", "1h")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.seed_samples", false)
	v.SetDefault("catalog.cache_ttl", "5m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	envBindings := [][2]string{
		{"server.environment", "ENVIRONMENT"},
		{"server.port", "PORT"},
		{"server.allowed_origins", "ALLOWED_ORIGINS"},
		{"database.url", "POSTGRES_URL"},
		{"database.max_open_conns", "DB_MAX_OPEN_CONNS"},
		{"database.max_idle_conns", "DB_MAX_IDLE_CONNS"},
		{"database.conn_max_life", "DB_CONN_MAX_LIFE"},
		{"database.auto_migrate", "DB_AUTO_MIGRATE"},
		{"database.seed_samples", "DB_SEED_SAMPLES"},
		{"catalog.cache_ttl", "CATALOG_CACHE_TTL"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file read failed: %w", err)
		}
	}

	cfg := Config{Planner: planner.DefaultTuning()}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"database", logger.MaskConnectionString(cfg.Database.URL),
		"catalog_cache_ttl", cfg.Catalog.CacheTTL,
	)
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}
	if cfg.Server.Port == "" {
		return errors.New("server port is required")
	}
	if cfg.Database.URL == "" && cfg.Server.Environment != EnvTest {
		return errors.New("database url (POSTGRES_URL) is required")
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return errors.New("database connection limits must not be negative")
	}
	if cfg.Catalog.CacheTTL < 0 {
		return errors.New("catalog cache ttl must not be negative")
	}
	if err := cfg.Planner.Validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	return nil
}

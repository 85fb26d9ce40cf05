package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Scryfall ScryfallConfig `mapstructure:"scryfall"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Bulk     BulkConfig     `mapstructure:"bulk"`
	Log      LogConfig      `mapstructure:"log"`
}

// ScryfallConfig holds Scryfall API configuration
type ScryfallConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"` // seconds
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxWorkers           int    `mapstructure:"max_workers"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"` // 0 disables pacing
	UserAgent            string `mapstructure:"user_agent"`
	PageSizeHint         int    `mapstructure:"page_size_hint"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN returns the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Password      string `mapstructure:"password"`
	Database      int    `mapstructure:"database"`
	ConsumerGroup string `mapstructure:"consumer_group"`
	MinIdleTime   int    `mapstructure:"min_idle_time"`
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BulkConfig controls bulk file downloads and imports
type BulkConfig struct {
	Directory string `mapstructure:"directory"`
	BatchSize int    `mapstructure:"batch_size"`
	Buffer    int    `mapstructure:"buffer"` // pages prefetched by buffered streams
}

// LogConfig controls the logrus level and formatter
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// Load loads configuration from config.yaml with environment variable
// overrides. A missing file is not an error; defaults and the environment
// are used instead.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Scryfall.BaseURL == "" {
		return fmt.Errorf("scryfall.base_url must not be empty")
	}
	if c.Scryfall.MaxWorkers < 1 {
		return fmt.Errorf("scryfall.max_workers must be at least 1, got %d", c.Scryfall.MaxWorkers)
	}
	if c.Bulk.BatchSize < 1 {
		return fmt.Errorf("bulk.batch_size must be at least 1, got %d", c.Bulk.BatchSize)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("scryfall.base_url", "https://api.scryfall.com")
	viper.SetDefault("scryfall.timeout", 30)
	viper.SetDefault("scryfall.max_retries", 3)
	viper.SetDefault("scryfall.max_workers", 4)
	viper.SetDefault("scryfall.max_requests_per_second", 10)
	viper.SetDefault("scryfall.user_agent", "scryfall-client/1.0")
	viper.SetDefault("scryfall.page_size_hint", 175)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "scryfall")
	viper.SetDefault("database.user", "scryfall_user")
	viper.SetDefault("database.password", "scryfall_pass")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.consumer_group", "scryfall_consumer")
	viper.SetDefault("redis.min_idle_time", 120)

	viper.SetDefault("bulk.directory", "./bulk")
	viper.SetDefault("bulk.batch_size", 500)
	viper.SetDefault("bulk.buffer", 2)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

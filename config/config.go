package config

import (
	"fmt"
	"net"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DataPaths holds data directory and file path configuration.
// These paths can be overridden via environment variables.
type DataPaths struct {
	// DataDir is the base data directory (CITYHIVE_DATA_DIR, default: ./data)
	DataDir string `mapstructure:"data_dir"`
	// SQLitePath is the SQLite database file path (CITYHIVE_SQLITE_PATH, default: ${DataDir}/cityhive.db)
	SQLitePath string `mapstructure:"sqlite_path"`
}

// Config holds all configuration for the CityHive service
type Config struct {
	Service struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
	} `mapstructure:"service"`

	// DataPaths holds all data directory configuration
	DataPaths DataPaths `mapstructure:"data_paths"`

	API struct {
		Host         string `mapstructure:"host"`
		Port         int    `mapstructure:"port"`
		ReadTimeout  int    `mapstructure:"read_timeout"`  // seconds
		WriteTimeout int    `mapstructure:"write_timeout"` // seconds
		IdleTimeout  int    `mapstructure:"idle_timeout"`  // seconds
		RateLimit    struct {
			RequestsPerSecond int `mapstructure:"requests_per_second"`
			Burst             int `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Health struct {
		// DBTimeoutSeconds bounds each database connectivity probe
		DBTimeoutSeconds int `mapstructure:"db_timeout_seconds"`
	} `mapstructure:"health"`

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

func setDefaults() {
	viper.SetDefault("service.name", "cityhive")
	viper.SetDefault("service.version", "1.0.0")

	viper.SetDefault("data_paths.data_dir", "./data")
	viper.SetDefault("data_paths.sqlite_path", "") // Empty = derive from data_dir

	viper.SetDefault("api.host", "0.0.0.0")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.read_timeout", 15)
	viper.SetDefault("api.write_timeout", 15)
	viper.SetDefault("api.idle_timeout", 60)
	viper.SetDefault("api.rate_limit.requests_per_second", 100)
	viper.SetDefault("api.rate_limit.burst", 200)

	viper.SetDefault("health.db_timeout_seconds", 5)

	viper.SetDefault("logging.level", "info")
}

// loadFromEnv sets up environment variable loading
func loadFromEnv() {
	viper.SetEnvPrefix("CITYHIVE")
	viper.AutomaticEnv()

	// Explicit bindings for shorter, cleaner env var names
	_ = viper.BindEnv("data_paths.data_dir", "CITYHIVE_DATA_DIR")
	_ = viper.BindEnv("data_paths.sqlite_path", "CITYHIVE_SQLITE_PATH")
	_ = viper.BindEnv("api.port", "CITYHIVE_API_PORT")
	_ = viper.BindEnv("logging.level", "CITYHIVE_LOG_LEVEL")
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	loadFromEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	config.ResolveDataPaths()

	return &config, nil
}

// ResolveDataPaths resolves all data paths, deriving from DataDir if not explicitly set
func (c *Config) ResolveDataPaths() {
	dataDir := c.DataPaths.DataDir
	if dataDir == "" {
		dataDir = "./data"
	}

	if c.DataPaths.SQLitePath == "" {
		c.DataPaths.SQLitePath = filepath.Join(dataDir, "cityhive.db")
	} else if !filepath.IsAbs(c.DataPaths.SQLitePath) {
		c.DataPaths.SQLitePath = filepath.Clean(c.DataPaths.SQLitePath)
	}

	c.DataPaths.DataDir = dataDir
}

// GetSQLitePath returns the resolved SQLite database path
func (c *Config) GetSQLitePath() string {
	if c.DataPaths.SQLitePath == "" {
		return filepath.Join(c.DataPaths.DataDir, "cityhive.db")
	}
	return c.DataPaths.SQLitePath
}

// ListenAddress returns the host:port the API server binds to
func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.API.Host, fmt.Sprintf("%d", c.API.Port))
}

// DBTimeout returns the health probe timeout as a duration
func (c *Config) DBTimeout() time.Duration {
	return time.Duration(c.Health.DBTimeoutSeconds) * time.Second
}

// validateConfig validates the configuration for correctness
func validateConfig(config *Config) error {
	if config.Service.Name == "" {
		return fmt.Errorf("service name cannot be empty")
	}
	if config.API.Port < 1 || config.API.Port > 65535 {
		return fmt.Errorf("invalid API port: %d", config.API.Port)
	}
	if config.API.RateLimit.RequestsPerSecond < 1 {
		return fmt.Errorf("rate limit requests_per_second must be positive")
	}
	if config.API.RateLimit.Burst < config.API.RateLimit.RequestsPerSecond {
		return fmt.Errorf("rate limit burst must be >= requests_per_second")
	}
	if config.Health.DBTimeoutSeconds < 1 {
		return fmt.Errorf("health db_timeout_seconds must be positive")
	}
	return nil
}

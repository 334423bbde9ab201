package config

import (
	"errors"
	"fmt"
	"os"

	"darshan/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	API        APIConfig        `yaml:"api"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Assistant  AssistantConfig  `yaml:"assistant"`
	Booking    BookingConfig    `yaml:"booking"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Exports    ExportConfig     `yaml:"exports"`
	Backup     BackupConfig     `yaml:"backup"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type APIConfig struct {
	Port      int             `yaml:"port"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type AssistantConfig struct {
	APIKey            string  `yaml:"api_key"`
	Model             string  `yaml:"model"`
	Language          string  `yaml:"language"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// BookingConfig carries booking policy values. Guide pricing is not
// itemized in the catalog, so a guided tour is costed with a flat rate
// and a flat duration.
type BookingConfig struct {
	GuideFlatRate  int64   `yaml:"guide_flat_rate"`
	GuideTourHours float64 `yaml:"guide_tour_hours"`
	StateTTL       int     `yaml:"state_ttl"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type BackupConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Schedule      string `yaml:"schedule"`
	RetentionDays int    `yaml:"retention_days"`
	StoragePath   string `yaml:"storage_path"`
}

// Load reads the YAML config, expanding ${ENV} references after merging
// a .env file when one is present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expanded, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}

	if c.Booking.GuideFlatRate < 0 {
		return errors.New("booking.guide_flat_rate must not be negative")
	}
	if c.Booking.GuideTourHours < 0 {
		return errors.New("booking.guide_tour_hours must not be negative")
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return errors.New("redis.address is required when redis is enabled")
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "darshan"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Booking.GuideFlatRate == 0 {
		c.Booking.GuideFlatRate = models.DefaultGuideFlatRate
	}
	if c.Booking.GuideTourHours == 0 {
		c.Booking.GuideTourHours = models.DefaultGuideTourHours
	}
	if c.Booking.StateTTL == 0 {
		c.Booking.StateTTL = models.DefaultStateTTL
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gemini-2.5-flash"
	}
	if c.Assistant.RequestsPerSecond == 0 {
		c.Assistant.RequestsPerSecond = 1
	}
	if c.Assistant.Burst == 0 {
		c.Assistant.Burst = 3
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Backup.Enabled && c.Backup.RetentionDays == 0 {
		c.Backup.RetentionDays = 14
	}
}

package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Cache drivers
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DB"`
	OpenAI    OpenAIConfig    `envconfig:"OPENAI"`
	Anthropic AnthropicConfig `envconfig:"ANTHROPIC"`
	LLM       LLMSettings     `envconfig:"LLM"`
	Cache     CacheConfig     `envconfig:"CACHE"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	Archive   ArchiveConfig   `envconfig:"ARCHIVE"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `default:"3001"`
	Host            string        `default:"0.0.0.0"`
	Environment     string        `default:"development"`
	AllowedOrigins  []string      `split_words:"true" default:"*"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	BodyLimit       string        `split_words:"true" default:"2M"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `default:"postgres"`
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	User     string `default:"postgres"`
	Password string `default:"postgres"`
	Name     string `default:"meeting_analyzer"`
	SSLMode  string `split_words:"true" default:"disable"`
	MaxConns int    `split_words:"true" default:"25"`
	MinConns int    `split_words:"true" default:"5"`

	// Path is the SQLite database file
	Path           string `default:"meeting_analyzer.db"`
	AutoMigrate    bool   `split_words:"true" default:"false"`
	ConnectRetries uint64 `split_words:"true" default:"5"`
}

// OpenAIConfig holds credentials for the OpenAI-style provider.
// BaseURL may point at any OpenAI-compatible gateway.
type OpenAIConfig struct {
	APIKey  string `split_words:"true"`
	Model   string `default:"gpt-3.5-turbo"`
	BaseURL string `split_words:"true"`
}

// AnthropicConfig holds credentials for the Anthropic provider
type AnthropicConfig struct {
	APIKey    string `split_words:"true"`
	Model     string `default:"claude-sonnet-4-20250514"`
	BaseURL   string `split_words:"true" default:"https://api.anthropic.com"`
	MaxTokens int    `split_words:"true" default:"4096"`
}

// LLMSettings holds settings shared by every provider
type LLMSettings struct {
	Timeout time.Duration `default:"60s"`
}

// LLMConfig is the provider configuration handed to adapter selection
type LLMConfig struct {
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Timeout   time.Duration
}

// CacheConfig holds analysis read-cache configuration
type CacheConfig struct {
	Driver string        `default:"memory"`
	TTL    time.Duration `default:"10m"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"6379"`
	Password string
	DB       int    `default:"0"`
}

// ArchiveConfig holds object storage configuration for the analysis archive
type ArchiveConfig struct {
	Enabled         bool   `default:"false"`
	Endpoint        string `default:"localhost:9000"`
	AccessKeyID     string `split_words:"true" default:"minioadmin"`
	SecretAccessKey string `split_words:"true" default:"minioadmin"`
	BucketName      string `split_words:"true" default:"meeting-analyses"`
	UseSSL          bool   `split_words:"true" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	switch c.Cache.Driver {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("CACHE_DRIVER must be one of none, memory, redis, got %q", c.Cache.Driver)
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	return nil
}

// LLMConfig returns the provider credentials and shared settings
func (c *Config) LLMConfig() LLMConfig {
	return LLMConfig{
		OpenAI:    c.OpenAI,
		Anthropic: c.Anthropic,
		Timeout:   c.LLM.Timeout,
	}
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == DriverSQLite {
		return c.Database.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

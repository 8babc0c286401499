package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa
 * Values come from the environment, optionally seeded by a .env file
 * and a config.{yaml,toml} file in the working directory.
 */

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"

	SecretFromEnv = "env"
	SecretFromSSM = "ssm"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Env      string `mapstructure:"ENV"`

	CounterBackend string `mapstructure:"COUNTER_BACKEND"`
	EventTable     string `mapstructure:"GITHUB_EVENT_TABLE"`

	SecretBackend string `mapstructure:"SECRET_BACKEND"`
	WebhookSecret string `mapstructure:"GITHUB_WEBHOOK_SECRET"`
	SecretName    string `mapstructure:"WEBHOOK_SECRET_NAME"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	PostgresDSN string `mapstructure:"POSTGRES_DSN"`

	AWSRegion        string `mapstructure:"AWS_REGION"`
	DynamoDBEndpoint string `mapstructure:"DYNAMODB_ENDPOINT"`
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"LOG_LEVEL":             "info",
	"ENV":                   "production",
	"COUNTER_BACKEND":       BackendMemory,
	"GITHUB_EVENT_TABLE":    "github-events",
	"SECRET_BACKEND":        SecretFromEnv,
	"GITHUB_WEBHOOK_SECRET": "",
	"WEBHOOK_SECRET_NAME":   "github-webhook-secret",
	"REDIS_ADDR":            "localhost:6379",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"POSTGRES_DSN":          "",
	"AWS_REGION":            "",
	"DYNAMODB_ENDPOINT":     "",
}

// GetConfig loads the configuration from the working directory and the environment
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads dir/.env and dir/config.* if present, then the environment.
// Environment variables always win over file values.
func Load(dir string) (*Config, error) {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	// older deployments set the misspelled GITHB_EVENT_TABLE
	if err := v.BindEnv("GITHUB_EVENT_TABLE", "GITHUB_EVENT_TABLE", "GITHB_EVENT_TABLE"); err != nil {
		return nil, fmt.Errorf("binding event table variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings each backend needs
func (c *Config) Validate() error {
	switch c.CounterBackend {
	case BackendMemory, BackendDynamoDB:
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis counter backend")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres counter backend")
		}
	default:
		return fmt.Errorf("unknown COUNTER_BACKEND %q", c.CounterBackend)
	}
	if c.EventTable == "" {
		return errors.New("GITHUB_EVENT_TABLE must not be empty")
	}

	switch c.SecretBackend {
	case SecretFromEnv:
	case SecretFromSSM:
		if c.SecretName == "" {
			return errors.New("WEBHOOK_SECRET_NAME is required for the ssm secret backend")
		}
	default:
		return fmt.Errorf("unknown SECRET_BACKEND %q", c.SecretBackend)
	}
	return nil
}

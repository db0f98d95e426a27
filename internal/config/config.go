package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment   DeploymentConfig   `mapstructure:"deployment" validate:"required"`
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Logging      LoggingConfig      `mapstructure:"logging" validate:"required"`
	Sentry       SentryConfig       `mapstructure:"sentry"`
	Notification NotificationConfig `mapstructure:"notification"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required,oneof=local api"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn" validate:"required_if=Enabled true"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// NewConfig loads the configuration from the default search paths
func NewConfig() (*Configuration, error) {
	return LoadConfig("")
}

// LoadConfig loads the configuration from file when set, otherwise from
// config.yaml in the search paths. Environment variables prefixed with
// BACKOFFICE_ always win, e.g. BACKOFFICE_SERVER_ADDRESS.
func LoadConfig(file string) (*Configuration, error) {
	// .env is optional; a missing file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./internal/config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("notification.enabled", true)
	v.SetDefault("notification.topic", "backoffice_events")
	v.SetDefault("notification.pubsub", string(types.MemoryPubSub))
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Sentry:     SentryConfig{Environment: "development", SampleRate: 1.0},
		Notification: NotificationConfig{
			Enabled: true,
			Topic:   "backoffice_events",
			PubSub:  types.MemoryPubSub,
		},
	}
}

// Redacted returns a copy safe to print
func (c Configuration) Redacted() Configuration {
	if c.Sentry.DSN != "" {
		c.Sentry.DSN = "***"
	}
	return c
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream events API
	EventsAPI EventsAPIConfig

	// Request handling
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string `validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port int    `validate:"required,min=1,max=65535"`
	Mode string `validate:"oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string
	Encoding     string `validate:"oneof=json console"`
	ColorEnabled bool
}

type EventsAPIConfig struct {
	BaseURL string `validate:"required,url"`
	// Timeout bounds one upstream call. Zero means no client-side timeout.
	Timeout time.Duration `validate:"min=0"`
}

type AuthConfig struct {
	// ServiceToken is used for mutations when the request carries no credential.
	ServiceToken string
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int `validate:"gte=0"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Events API
	cfg.EventsAPI.BaseURL = strings.TrimRight(v.GetString("events_api.base_url"), "/")
	cfg.EventsAPI.Timeout = v.GetDuration("events_api.timeout")

	// Auth
	cfg.Auth.ServiceToken = v.GetString("auth.service_token")

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin == 0 {
		return nil, fmt.Errorf("invalid config: rate_limit.per_min is required when rate limiting is enabled")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8081)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("events_api.base_url", "http://localhost:8080")
	v.SetDefault("events_api.timeout", 0)
	v.SetDefault("auth.service_token", "")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_min", 120)
}

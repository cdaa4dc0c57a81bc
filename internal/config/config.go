// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types and validates that
// required values are present so they can be reused across the
// application runtime.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a `.env` file into the process environment before any
	// variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every variable read into Config. Nested
// fields use "." in the variable name, e.g. LADDER_SERVER.PORT maps to
// Config.Server.Port.
const EnvPrefix = "LADDER_"

const ServiceName = "ladder-stats"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Admin         AdminConfig          `koanf:"admin" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details. Sessions, the
// leaderboard and the job queue share it.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig controls login sessions. SessionTTL is in seconds.
type AuthConfig struct {
	SessionTTL int    `koanf:"session_ttl" validate:"min=60"`
	CookieName string `koanf:"cookie_name"`
}

// AdminConfig identifies the single administrator. A session is admin
// only when both its username and its account name match.
type AdminConfig struct {
	Username    string `koanf:"username" validate:"required"`
	AccountName string `koanf:"account_name" validate:"required"`
	Email       string `koanf:"email" validate:"omitempty,email"`
}

// IntegrationConfig holds settings for outbound services.
type IntegrationConfig struct {
	ResendAPIKey  string `koanf:"resend_api_key"`
	LadderAPIURL  string `koanf:"ladder_api_url" validate:"url"`
	LadderLimit   int    `koanf:"ladder_limit" validate:"min=1,max=200"`
	LadderTimeout int    `koanf:"ladder_timeout" validate:"min=1"`
}

// RateLimitConfig is applied per client IP to the API group.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int     `koanf:"burst" validate:"gte=0"`
}

// LoadConfig reads every LADDER_ variable, unmarshals it into Config,
// fills optional blocks with defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 24 * 60 * 60
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "ladder_session"
	}
	if c.Integration.LadderAPIURL == "" {
		c.Integration.LadderAPIURL = "http://api.pathofexile.com"
	}
	if c.Integration.LadderLimit == 0 {
		c.Integration.LadderLimit = 10
	}
	if c.Integration.LadderTimeout == 0 {
		c.Integration.LadderTimeout = 10
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 20
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 40
	}
}

// IsLocal reports whether the process runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

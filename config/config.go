package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	AIGateway     AIGatewayConfig
	AdminSession  AdminSessionConfig
	EventTriggers EventTriggersConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

// AIGatewayConfig configures the hosted text-generation service.
// The API key is process-wide read-only configuration, injected into the
// greeting service at startup. A missing key is not a config-load failure:
// it surfaces per-request as an internal error so the rest of the API
// (share links, admin area) stays up.
type AIGatewayConfig struct {
	Endpoint       string
	APIKey         string
	Model          string
	Temperature    float64
	TimeoutSeconds int
}

type AdminSessionConfig struct {
	JWTSecret       string
	JWTIssuer       string
	SessionTTLHours int
	CookieDomain    string
	CookieSecure    bool
}

type EventTriggersConfig struct {
	GreetingCreatedTriggerURL string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type CacheConfig struct {
	GreetingTTLSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://wishes.rcee.ac.in")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://wishes.rcee.ac.in")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("AI_GATEWAY_ENDPOINT", "https://ai.gateway.lovable.dev/v1/chat/completions")
	v.SetDefault("AI_GATEWAY_MODEL", "google/gemini-2.5-flash")
	v.SetDefault("AI_GATEWAY_TEMPERATURE", 0.8)
	v.SetDefault("AI_GATEWAY_TIMEOUT_SECONDS", 8)
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("GREETING_CACHE_TTL", 300)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "greetings-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "rce-newyear")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")

	// Admin session defaults
	v.SetDefault("JWT_ISSUER", "greetings-api")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("COOKIE_SECURE", true)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: allowedOrigins,
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			MinConns: v.GetInt32("DB_MIN_CONNS"),
		},
		AIGateway: AIGatewayConfig{
			Endpoint:       v.GetString("AI_GATEWAY_ENDPOINT"),
			APIKey:         v.GetString("AI_GATEWAY_API_KEY"),
			Model:          v.GetString("AI_GATEWAY_MODEL"),
			Temperature:    v.GetFloat64("AI_GATEWAY_TEMPERATURE"),
			TimeoutSeconds: v.GetInt("AI_GATEWAY_TIMEOUT_SECONDS"),
		},
		AdminSession: AdminSessionConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			JWTIssuer:       v.GetString("JWT_ISSUER"),
			SessionTTLHours: v.GetInt("SESSION_TTL_HOURS"),
			CookieDomain:    v.GetString("COOKIE_DOMAIN"),
			CookieSecure:    v.GetBool("COOKIE_SECURE"),
		},
		EventTriggers: EventTriggersConfig{
			GreetingCreatedTriggerURL: v.GetString("GREETING_CREATED_TRIGGER_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Cache: CacheConfig{
			GreetingTTLSeconds: v.GetInt("GREETING_CACHE_TTL"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if c.AIGateway.Endpoint == "" {
		return fmt.Errorf("AI_GATEWAY_ENDPOINT is required")
	}
	if c.AIGateway.Model == "" {
		return fmt.Errorf("AI_GATEWAY_MODEL is required")
	}
	if c.AIGateway.TimeoutSeconds <= 0 {
		return fmt.Errorf("AI_GATEWAY_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

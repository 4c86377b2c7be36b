package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	EnableRLS        bool   `mapstructure:"DB_ENABLE_RLS"`

	// Tenancy configuration. DefaultTenantID is used when a tenant-scoped
	// operation runs without an explicit tenant in its context.
	DefaultTenantID string `mapstructure:"DEFAULT_TENANT_ID"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	// Session configuration
	SessionTTLHours       int    `mapstructure:"SESSION_TTL_HOURS"`
	SessionCookieName     string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieDomain   string `mapstructure:"SESSION_COOKIE_DOMAIN"`
	SessionCookieSecure   bool   `mapstructure:"SESSION_COOKIE_SECURE"`
	SessionCookieSameSite string `mapstructure:"SESSION_COOKIE_SAMESITE"`

	// Redis session cache (optional)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth0 configuration. When Auth0Domain is empty the local password provider is used.
	Auth0Domain         string `mapstructure:"AUTH0_DOMAIN"`
	Auth0ClientID       string `mapstructure:"AUTH0_CLIENT_ID"`
	Auth0ClientSecret   string `mapstructure:"AUTH0_CLIENT_SECRET"`
	Auth0Audience       string `mapstructure:"AUTH0_AUDIENCE"`
	Auth0RedirectURL    string `mapstructure:"AUTH0_REDIRECT_URL"`
	Auth0TimeoutSeconds int    `mapstructure:"AUTH0_TIMEOUT_SECONDS"`

	// Local signup is only meaningful without Auth0
	AllowLocalSignup bool `mapstructure:"ALLOW_LOCAL_SIGNUP"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Metrics
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "bizhub")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_ENABLE_RLS", false)

	viper.SetDefault("DEFAULT_TENANT_ID", "")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_ISSUER", "bizhub-backend")

	// Session defaults
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE_NAME", "session_token")
	viper.SetDefault("SESSION_COOKIE_DOMAIN", "")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("SESSION_COOKIE_SAMESITE", "lax")

	viper.SetDefault("REDIS_URL", "")

	// Auth0 defaults
	viper.SetDefault("AUTH0_DOMAIN", "")
	viper.SetDefault("AUTH0_CLIENT_ID", "")
	viper.SetDefault("AUTH0_CLIENT_SECRET", "")
	viper.SetDefault("AUTH0_AUDIENCE", "")
	viper.SetDefault("AUTH0_REDIRECT_URL", "http://localhost:3000/auth/callback")
	viper.SetDefault("AUTH0_TIMEOUT_SECONDS", 10)

	viper.SetDefault("ALLOW_LOCAL_SIGNUP", true)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("METRICS_ENABLED", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	if config.DefaultTenantID != "" {
		if _, err := uuid.Parse(config.DefaultTenantID); err != nil {
			return fmt.Errorf("DEFAULT_TENANT_ID must be a UUID: %w", err)
		}
	}

	if config.Auth0Domain != "" && (config.Auth0ClientID == "" || config.Auth0ClientSecret == "") {
		return fmt.Errorf("AUTH0_CLIENT_ID and AUTH0_CLIENT_SECRET are required when AUTH0_DOMAIN is set")
	}

	switch strings.ToLower(config.SessionCookieSameSite) {
	case "lax", "strict", "none":
	default:
		return fmt.Errorf("SESSION_COOKIE_SAMESITE must be lax, strict or none")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Auth0Enabled reports whether the Auth0 identity provider is configured.
func (c *Config) Auth0Enabled() bool {
	return c.Auth0Domain != ""
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Auth0Timeout returns the timeout applied to outbound Auth0 calls.
func (c *Config) Auth0Timeout() time.Duration {
	if c.Auth0TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Auth0TimeoutSeconds) * time.Second
}

// DefaultTenant returns the parsed default tenant, or uuid.Nil when unset.
func (c *Config) DefaultTenant() uuid.UUID {
	if c.DefaultTenantID == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(c.DefaultTenantID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// CookieSameSite converts the configured SameSite policy for net/http cookies.
func (c *Config) CookieSameSite() http.SameSite {
	switch strings.ToLower(c.SessionCookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

package auth

import (
	"net/http"
	"strings"
	"time"

	"bizhub-backend/internal/config"
	apperrors "bizhub-backend/internal/errors"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration
	Auth0     Auth0Config
	Cookie    CookieConfig
}

// Auth0Config holds the Auth0 tenant settings
type Auth0Config struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Audience     string
	RedirectURL  string
	Timeout      time.Duration
}

// CookieConfig describes the session cookie contract
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// NewAuthConfig derives the auth configuration from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	issuer := cfg.JWTIssuer
	if issuer == "" {
		issuer = "bizhub-backend"
	}
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		JWTIssuer: issuer,
		JWTTTL:    time.Hour,
		Auth0: Auth0Config{
			Domain:       cfg.Auth0Domain,
			ClientID:     cfg.Auth0ClientID,
			ClientSecret: cfg.Auth0ClientSecret,
			Audience:     cfg.Auth0Audience,
			RedirectURL:  cfg.Auth0RedirectURL,
			Timeout:      cfg.Auth0Timeout(),
		},
		Cookie: CookieConfig{
			Name:     cfg.SessionCookieName,
			Domain:   cfg.SessionCookieDomain,
			Secure:   cfg.SessionCookieSecure || !cfg.IsDevelopment(),
			SameSite: cfg.CookieSameSite(),
			MaxAge:   cfg.SessionTTL(),
		},
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.ErrJWTSecretMissing
	}
	if c.Auth0.Domain != "" && !c.Auth0.Configured() {
		return apperrors.ErrAuth0NotConfigured
	}
	return nil
}

// Configured reports whether every setting needed to talk to Auth0 is present
func (c Auth0Config) Configured() bool {
	return c.Domain != "" && c.ClientID != "" && c.ClientSecret != ""
}

// Issuer returns the OIDC issuer URL of the Auth0 tenant. A domain given with a
// scheme is used as-is.
func (c Auth0Config) Issuer() string {
	issuer := c.Domain
	if !strings.HasPrefix(issuer, "http://") && !strings.HasPrefix(issuer, "https://") {
		issuer = "https://" + issuer
	}
	return strings.TrimSuffix(issuer, "/") + "/"
}

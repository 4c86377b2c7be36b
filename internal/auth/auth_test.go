package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"bizhub-backend/internal/config"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: "test-signing-key",
		JWTIssuer: "bizhub-test",
		JWTTTL:    time.Hour,
	}
}

func TestNewAuthConfig(t *testing.T) {
	base := config.Config{
		Environment:           "development",
		JWTSecret:             "secret",
		SessionTTLHours:       24,
		SessionCookieName:     "session_token",
		SessionCookieSameSite: "lax",
	}

	t.Run("development cookie is not forced secure", func(t *testing.T) {
		cfg := base
		authCfg := NewAuthConfig(&cfg)

		assert.Equal(t, "session_token", authCfg.Cookie.Name)
		assert.False(t, authCfg.Cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, authCfg.Cookie.SameSite)
		assert.Equal(t, 24*time.Hour, authCfg.Cookie.MaxAge)
		assert.Equal(t, "bizhub-backend", authCfg.JWTIssuer)
		assert.Equal(t, 10*time.Second, authCfg.Auth0.Timeout)
	})

	t.Run("secure outside development", func(t *testing.T) {
		for _, env := range []string{"staging", "production"} {
			cfg := base
			cfg.Environment = env
			assert.True(t, NewAuthConfig(&cfg).Cookie.Secure, env)
		}
	})

	t.Run("explicit secure in development", func(t *testing.T) {
		cfg := base
		cfg.SessionCookieSecure = true
		assert.True(t, NewAuthConfig(&cfg).Cookie.Secure)
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testAuthConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = ""
		assert.ErrorIs(t, cfg.ValidateConfig(), apperrors.ErrJWTSecretMissing)
	})

	t.Run("partial auth0 settings", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.Auth0.Domain = "tenant.auth0.com"
		assert.ErrorIs(t, cfg.ValidateConfig(), apperrors.ErrAuth0NotConfigured)

		cfg.Auth0.ClientID = "client"
		cfg.Auth0.ClientSecret = "secret"
		assert.NoError(t, cfg.ValidateConfig())
	})
}

func TestAuth0Issuer(t *testing.T) {
	assert.Equal(t, "https://tenant.auth0.com/", Auth0Config{Domain: "tenant.auth0.com"}.Issuer())
	assert.Equal(t, "https://tenant.auth0.com/", Auth0Config{Domain: "tenant.auth0.com/"}.Issuer())
	assert.Equal(t, "http://127.0.0.1:8080/", Auth0Config{Domain: "http://127.0.0.1:8080"}.Issuer())
}

func TestJWTOperations(t *testing.T) {
	tokens, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	tenantID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "a@b.com",
		Role:      models.UserRoleOwner,
		TenantID:  &tenantID,
	}

	t.Run("round trip", func(t *testing.T) {
		token, expiresAt, err := tokens.GenerateJWT(user)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

		claims, err := tokens.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "a@b.com", claims.Email)
		assert.Equal(t, tenantID.String(), claims.TenantID)

		principal := claims.Principal()
		assert.Equal(t, user.ID, principal.UserID)
		assert.Equal(t, tenantID, *principal.TenantID)
		assert.Equal(t, MethodBearer, principal.Method)
		assert.Equal(t, models.UserRoleOwner, principal.Role)
	})

	t.Run("user without tenant", func(t *testing.T) {
		token, _, err := tokens.GenerateJWT(&models.User{BaseModel: models.BaseModel{ID: uuid.New()}})
		require.NoError(t, err)

		claims, err := tokens.ValidateJWT(token)
		require.NoError(t, err)
		assert.Nil(t, claims.Principal().TenantID)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, _, err := expired.GenerateJWT(user)
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = "other-key"
		other, err := NewTokenService(cfg)
		require.NoError(t, err)

		token, _, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTIssuer = "someone-else"
		other, err := NewTokenService(cfg)
		require.NoError(t, err)

		token, _, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{
			UserID:           user.ID.String(),
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "bizhub-test"},
		})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenService(&AuthConfig{})
		assert.ErrorIs(t, err, apperrors.ErrJWTSecretMissing)
	})
}

func TestMapTokenError(t *testing.T) {
	rejected := &oauth2.RetrieveError{Response: &http.Response{StatusCode: http.StatusForbidden}}
	assert.ErrorIs(t, mapTokenError(rejected, apperrors.ErrInvalidCredentials), apperrors.ErrInvalidCredentials)

	broken := &oauth2.RetrieveError{Response: &http.Response{StatusCode: http.StatusBadGateway}}
	err := mapTokenError(broken, apperrors.ErrInvalidCredentials)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.HTTPStatus(err))

	timeout := &url.Error{Op: "Post", URL: "https://tenant.auth0.com/oauth/token", Err: timeoutError{}}
	err = mapTokenError(timeout, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusGatewayTimeout, apperrors.HTTPStatus(err))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestAuth0ClaimsIdentity(t *testing.T) {
	identity := auth0Claims{
		Subject: "auth0|1",
		Email:   " Ada@Example.COM ",
		Name:    "Ada King Lovelace",
	}.identity()

	assert.Equal(t, ProviderAuth0, identity.Provider)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "Ada", identity.FirstName)
	assert.Equal(t, "King Lovelace", identity.LastName)

	identity = auth0Claims{GivenName: "Grace", FamilyName: "Hopper", Name: "ignored"}.identity()
	assert.Equal(t, "Grace", identity.FirstName)
	assert.Equal(t, "Hopper", identity.LastName)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.NoError(t, CheckPassword(hash, "correct-horse"))
	assert.ErrorIs(t, CheckPassword(hash, "battery-staple"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword("", "anything"), apperrors.ErrInvalidCredentials)
}

func TestAuthorizationValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		scheme string
		value  string
		found  bool
	}{
		{"no header", "", "Bearer", "", false},
		{"matching scheme", "Bearer abc.def", "Bearer", "abc.def", true},
		{"case insensitive scheme", "session 1234", "Session", "1234", true},
		{"other scheme", "Basic dXNlcg==", "Bearer", "", false},
		{"scheme without value", "Bearer", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}

			value, found := authorizationValue(c, tt.scheme)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestSessionTokenPrefersHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})

	assert.Equal(t, "from-cookie", SessionToken(c, "session_token"))
	assert.Empty(t, SessionToken(c, ""))

	c.Request.Header.Set("Authorization", "Session from-header")
	assert.Equal(t, "from-header", SessionToken(c, "session_token"))
}

package auth

import (
	"fmt"
	"time"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"0b6f8a0e-8d43-4c35-9a3c-62e8c0f1f0aa"`
	Email    string `json:"email" example:"owner@example.com"`
	TenantID string `json:"tenant_id,omitempty" example:"5d0e3a2c-1b7e-4f61-8f6a-0e9b7c1d2a33"`
	Role     string `json:"role" example:"OWNER"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService issues and validates the service's own bearer tokens
type TokenService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig) (*TokenService, error) {
	if config.JWTSecret == "" {
		return nil, apperrors.ErrJWTSecretMissing
	}
	return &TokenService{config: config, now: time.Now}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *TokenService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.JWTTTL)
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.JWTIssuer,
			Subject:   user.ID.String(),
		},
	}
	if user.TenantID != nil {
		claims.TenantID = user.TenantID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(s.config.JWTIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// Principal converts validated claims into an authenticated principal
func (c *AuthClaims) Principal() *Principal {
	p := &Principal{
		UserID: uuid.MustParse(c.UserID),
		Email:  c.Email,
		Role:   models.UserRole(c.Role),
		Method: MethodBearer,
		Claims: c,
	}
	if id, err := uuid.Parse(c.TenantID); err == nil {
		p.TenantID = &id
	}
	return p
}

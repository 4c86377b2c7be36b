package auth

import (
	"context"
	"errors"
	"strings"

	apperrors "bizhub-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const ProviderLocal = "local"

// LocalProvider checks credentials against bcrypt hashes stored on users.
// It is used when Auth0 is not configured.
type LocalProvider struct {
	users UserLookup
}

// NewLocalProvider creates a local credentials provider
func NewLocalProvider(users UserLookup) *LocalProvider {
	return &LocalProvider{users: users}
}

// Name implements IdentityProvider
func (p *LocalProvider) Name() string {
	return ProviderLocal
}

// PasswordLogin verifies the password of a local user
func (p *LocalProvider) PasswordLogin(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := p.users.GetByEmail(ctx, email)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}

	return &Identity{
		Provider:      ProviderLocal,
		Email:         user.Email,
		EmailVerified: true,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
	}, nil
}

// ExchangeCode is not supported without an OAuth provider
func (p *LocalProvider) ExchangeCode(ctx context.Context, code, redirectURI string) (*Identity, error) {
	return nil, apperrors.ErrAuth0NotConfigured
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a password
func CheckPassword(hash, password string) error {
	if hash == "" {
		return apperrors.ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperrors.ErrInvalidCredentials
	}
	return err
}

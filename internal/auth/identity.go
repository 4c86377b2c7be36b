package auth

import (
	"context"

	"bizhub-backend/internal/database/models"
)

//go:generate mockgen -source=identity.go -destination=../mocks/auth_identity_mocks.go -package=mocks

// Identity is an identity asserted by an identity provider
type Identity struct {
	Provider      string
	Subject       string
	Email         string
	EmailVerified bool
	FirstName     string
	LastName      string
	AccessToken   string
}

// IdentityProvider authenticates users against an identity store
type IdentityProvider interface {
	Name() string
	PasswordLogin(ctx context.Context, email, password string) (*Identity, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*Identity, error)
}

// AccessTokenVerifier verifies access tokens minted by an external provider
type AccessTokenVerifier interface {
	VerifyAccessToken(ctx context.Context, rawToken string) (*Identity, error)
}

// IdentityResolver maps a provider identity onto a local user, creating it when needed
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, identity *Identity) (*models.User, error)
}

// UserLookup finds local users by email
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

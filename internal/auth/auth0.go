package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/logger"

	"github.com/coreos/go-oidc"
	"golang.org/x/oauth2"
)

const (
	ProviderAuth0 = "auth0"

	ScopeOpenID  = "openid"
	ScopeProfile = "profile"
	ScopeEmail   = "email"
)

// Auth0Provider authenticates against an Auth0 tenant. Discovery runs on first
// use so the server can start while Auth0 is unreachable.
type Auth0Provider struct {
	config     Auth0Config
	httpClient *http.Client

	mu             sync.Mutex
	provider       *oidc.Provider
	oauth2Config   *oauth2.Config
	idVerifier     *oidc.IDTokenVerifier
	accessVerifier *oidc.IDTokenVerifier
}

// auth0Claims are the identity claims read from ID tokens and userinfo
type auth0Claims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Name          string `json:"name"`
}

// NewAuth0Provider creates an Auth0 provider
func NewAuth0Provider(config Auth0Config) (*Auth0Provider, error) {
	if !config.Configured() {
		return nil, apperrors.ErrAuth0NotConfigured
	}
	return &Auth0Provider{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

// Name implements IdentityProvider
func (p *Auth0Provider) Name() string {
	return ProviderAuth0
}

// clientContext routes oidc and oauth2 calls through the provider's timeout-bound client
func (p *Auth0Provider) clientContext(ctx context.Context) context.Context {
	return oidc.ClientContext(ctx, p.httpClient)
}

func (p *Auth0Provider) init(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.provider != nil {
		return nil
	}

	provider, err := oidc.NewProvider(p.clientContext(ctx), p.config.Issuer())
	if err != nil {
		return apperrors.NewUpstreamError(ProviderAuth0, fmt.Errorf("oidc discovery: %w", err))
	}

	endpoint := provider.Endpoint()
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	p.oauth2Config = &oauth2.Config{
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  p.config.RedirectURL,
		Scopes:       []string{ScopeOpenID, ScopeProfile, ScopeEmail},
	}
	p.idVerifier = provider.Verifier(&oidc.Config{ClientID: p.config.ClientID})
	// Access tokens carry the API audience rather than the client id
	p.accessVerifier = provider.Verifier(&oidc.Config{SkipClientIDCheck: true})
	p.provider = provider
	return nil
}

// PasswordLogin runs the resource owner password grant
func (p *Auth0Provider) PasswordLogin(ctx context.Context, email, password string) (*Identity, error) {
	if err := p.init(ctx); err != nil {
		return nil, err
	}
	token, err := p.oauth2Config.PasswordCredentialsToken(p.clientContext(ctx), email, password)
	if err != nil {
		return nil, mapTokenError(err, apperrors.ErrInvalidCredentials)
	}
	return p.identityFromToken(ctx, token)
}

// ExchangeCode exchanges an authorization code for tokens
func (p *Auth0Provider) ExchangeCode(ctx context.Context, code, redirectURI string) (*Identity, error) {
	if err := p.init(ctx); err != nil {
		return nil, err
	}

	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	if p.config.Audience != "" {
		opts = append(opts, oauth2.SetAuthURLParam("audience", p.config.Audience))
	}

	token, err := p.oauth2Config.Exchange(p.clientContext(ctx), code, opts...)
	if err != nil {
		return nil, mapTokenError(err, apperrors.ErrInvalidToken)
	}
	return p.identityFromToken(ctx, token)
}

func (p *Auth0Provider) identityFromToken(ctx context.Context, token *oauth2.Token) (*Identity, error) {
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewUpstreamError(ProviderAuth0, errors.New("no id_token in token response"))
	}

	idToken, err := p.idVerifier.Verify(p.clientContext(ctx), rawIDToken)
	if err != nil {
		return nil, rejectToken(ctx, "id token", err)
	}

	var claims auth0Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, rejectToken(ctx, "id token claims", err)
	}
	if claims.Subject == "" {
		claims.Subject = idToken.Subject
	}

	identity := claims.identity()
	identity.AccessToken = token.AccessToken
	if identity.Email == "" {
		return nil, apperrors.ErrIdentityEmailMissing
	}
	return identity, nil
}

// VerifyAccessToken implements AccessTokenVerifier. Access tokens rarely carry
// profile claims, so the profile is read from the userinfo endpoint.
func (p *Auth0Provider) VerifyAccessToken(ctx context.Context, rawToken string) (*Identity, error) {
	if err := p.init(ctx); err != nil {
		return nil, err
	}

	token, err := p.accessVerifier.Verify(p.clientContext(ctx), rawToken)
	if err != nil {
		return nil, rejectToken(ctx, "access token", err)
	}
	if p.config.Audience != "" && !containsString(token.Audience, p.config.Audience) {
		return nil, rejectToken(ctx, "access token", fmt.Errorf("audience %v does not include %s", token.Audience, p.config.Audience))
	}

	userInfo, err := p.provider.UserInfo(p.clientContext(ctx), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: rawToken}))
	if err != nil {
		return nil, apperrors.NewUpstreamError(ProviderAuth0, fmt.Errorf("userinfo: %w", err))
	}

	var claims auth0Claims
	if err := userInfo.Claims(&claims); err != nil {
		return nil, apperrors.NewUpstreamError(ProviderAuth0, fmt.Errorf("userinfo claims: %w", err))
	}
	claims.Subject = token.Subject

	identity := claims.identity()
	identity.AccessToken = rawToken
	if identity.Email == "" {
		return nil, apperrors.ErrIdentityEmailMissing
	}
	return identity, nil
}

func (c auth0Claims) identity() *Identity {
	first, last := c.GivenName, c.FamilyName
	if first == "" && last == "" && c.Name != "" {
		parts := strings.SplitN(strings.TrimSpace(c.Name), " ", 2)
		first = parts[0]
		if len(parts) > 1 {
			last = parts[1]
		}
	}
	return &Identity{
		Provider:      ProviderAuth0,
		Subject:       c.Subject,
		Email:         strings.ToLower(strings.TrimSpace(c.Email)),
		EmailVerified: c.EmailVerified,
		FirstName:     first,
		LastName:      last,
	}
}

// mapTokenError turns 4xx token endpoint answers into rejected, the rest into upstream errors
func mapTokenError(err error, rejected error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		status := retrieveErr.Response.StatusCode
		if status >= 400 && status < 500 {
			return rejected
		}
	}
	return apperrors.NewUpstreamError(ProviderAuth0, err)
}

// rejectToken logs why a token failed verification and returns the bare
// ErrInvalidToken, whose message is safe to show to clients.
func rejectToken(ctx context.Context, kind string, err error) error {
	logger.WithContext(ctx).WithError(err).WithField("token", kind).Warn("Auth0 token rejected")
	return apperrors.ErrInvalidToken
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

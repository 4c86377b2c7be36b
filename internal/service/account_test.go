package service_test

import (
	"context"
	"testing"
	"time"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/mocks"
	"bizhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUsers    *mocks.MockUserRepositoryInterface
	mockTenants  *mocks.MockTenantRepositoryInterface
	mockProgress *mocks.MockOnboardingProgressRepositoryInterface
	mockProvider *mocks.MockIdentityProvider
	mockSessions *mocks.MockSessionServiceInterface
	mockTokens   *mocks.MockTokenIssuer
	ctx          context.Context
	meta         service.RequestMeta
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockProgress = mocks.NewMockOnboardingProgressRepositoryInterface(suite.ctrl)
	suite.mockProvider = mocks.NewMockIdentityProvider(suite.ctrl)
	suite.mockSessions = mocks.NewMockSessionServiceInterface(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenIssuer(suite.ctrl)
	suite.ctx = context.Background()
	suite.meta = service.RequestMeta{IPAddress: "192.0.2.10", UserAgent: "test-agent"}
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// newService builds the service for a provider name; signup follows the provider
func (suite *AccountServiceTestSuite) newService(providerName string) *service.AccountService {
	suite.mockProvider.EXPECT().Name().Return(providerName).AnyTimes()
	return service.NewAccountService(
		suite.mockUsers,
		suite.mockTenants,
		suite.mockProgress,
		suite.mockProvider,
		suite.mockSessions,
		suite.mockTokens,
		service.NewValidator(),
		true,
	)
}

func (suite *AccountServiceTestSuite) expectSessionFor(user *models.User) *models.UserSession {
	session := &models.UserSession{
		SessionID:      uuid.New(),
		UserID:         user.ID,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		IsActive:       true,
		OnboardingStep: string(models.StepBusinessInfo),
	}
	suite.mockSessions.EXPECT().
		CreateSession(gomock.Any(), user, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.User, opts service.CreateSessionOptions) (*models.UserSession, error) {
			assert.Equal(suite.T(), suite.meta, opts.Meta)
			return session, nil
		})
	suite.mockTokens.EXPECT().GenerateJWT(user).Return("signed.jwt", session.ExpiresAt, nil)
	return session
}

func (suite *AccountServiceTestSuite) expectFreshProgress() {
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOnboardingProgressNotFound)
	suite.mockProgress.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.OnboardingProgress) error {
			assert.Equal(suite.T(), models.StepBusinessInfo, p.CurrentStep)
			return nil
		})
}

// TestPasswordLoginCreatesOwner tests the first login of a new identity
func (suite *AccountServiceTestSuite) TestPasswordLoginCreatesOwner() {
	svc := suite.newService(auth.ProviderAuth0)
	identity := &auth.Identity{
		Provider:      auth.ProviderAuth0,
		Subject:       "auth0|abc",
		Email:         "A@B.com",
		EmailVerified: true,
		AccessToken:   "upstream",
	}

	suite.mockProvider.EXPECT().PasswordLogin(gomock.Any(), "a@b.com", "pw").Return(identity, nil)
	suite.mockUsers.EXPECT().GetByAuth0Sub(gomock.Any(), "auth0|abc").Return(nil, apperrors.ErrUserNotFound)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(nil, apperrors.ErrUserNotFound)
	var created *models.User
	suite.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			created = u
			return nil
		})
	suite.expectFreshProgress()
	suite.mockSessions.EXPECT().
		CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User, opts service.CreateSessionOptions) (*models.UserSession, error) {
			assert.Equal(suite.T(), "upstream", opts.AccessToken)
			return &models.UserSession{SessionID: uuid.New(), UserID: u.ID, IsActive: true}, nil
		})
	suite.mockTokens.EXPECT().GenerateJWT(gomock.Any()).Return("signed.jwt", time.Now(), nil)

	resp, err := svc.PasswordLogin(suite.ctx, &service.PasswordLoginRequest{Email: "a@b.com", Password: "pw"}, suite.meta)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), created)
	assert.Equal(suite.T(), "a@b.com", created.Email)
	assert.Equal(suite.T(), models.UserRoleOwner, created.Role)
	assert.True(suite.T(), created.IsActive)
	assert.False(suite.T(), created.OnboardingCompleted)
	assert.Nil(suite.T(), created.TenantID)
	assert.Equal(suite.T(), "auth0|abc", *created.Auth0Sub)

	assert.True(suite.T(), resp.NeedsOnboarding)
	assert.Nil(suite.T(), resp.Tenant)
	assert.Equal(suite.T(), models.StepBusinessInfo, resp.OnboardingStep)
	assert.Equal(suite.T(), "signed.jwt", resp.AccessToken)
	assert.NotEmpty(suite.T(), resp.SessionToken)
}

// TestPasswordLoginOnboardedUser tests that an onboarded user gets their tenant back
func (suite *AccountServiceTestSuite) TestPasswordLoginOnboardedUser() {
	svc := suite.newService(auth.ProviderLocal)
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme"}
	user := &models.User{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		Email:               "a@b.com",
		IsActive:            true,
		OnboardingCompleted: true,
		TenantID:            &tenant.ID,
	}

	suite.mockProvider.EXPECT().PasswordLogin(gomock.Any(), "a@b.com", "pw").
		Return(&auth.Identity{Provider: auth.ProviderLocal, Email: "a@b.com", EmailVerified: true}, nil)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), user.ID).Return(&models.OnboardingProgress{UserID: user.ID}, nil)
	session := suite.expectSessionFor(user)
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), tenant.ID).Return(tenant, nil)

	resp, err := svc.PasswordLogin(suite.ctx, &service.PasswordLoginRequest{Email: "a@b.com", Password: "pw"}, suite.meta)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), session.SessionID.String(), resp.SessionToken)
	assert.Equal(suite.T(), tenant, resp.Tenant)
	assert.False(suite.T(), resp.NeedsOnboarding)
	assert.Equal(suite.T(), models.StepComplete, resp.OnboardingStep)
}

// TestPasswordLoginInvalidCredentials tests that provider rejections pass through
func (suite *AccountServiceTestSuite) TestPasswordLoginInvalidCredentials() {
	svc := suite.newService(auth.ProviderAuth0)
	suite.mockProvider.EXPECT().PasswordLogin(gomock.Any(), "a@b.com", "wrong").Return(nil, apperrors.ErrInvalidCredentials)

	resp, err := svc.PasswordLogin(suite.ctx, &service.PasswordLoginRequest{Email: "a@b.com", Password: "wrong"}, suite.meta)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestPasswordLoginValidation tests request validation
func (suite *AccountServiceTestSuite) TestPasswordLoginValidation() {
	svc := suite.newService(auth.ProviderAuth0)

	_, err := svc.PasswordLogin(suite.ctx, &service.PasswordLoginRequest{Email: "not-an-email", Password: "pw"}, suite.meta)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "email")
}

// TestOAuthExchange tests the authorization code flow
func (suite *AccountServiceTestSuite) TestOAuthExchange() {
	svc := suite.newService(auth.ProviderAuth0)
	sub := "auth0|abc"
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@b.com", Auth0Sub: &sub, IsActive: true}

	suite.mockProvider.EXPECT().ExchangeCode(gomock.Any(), "code-123", "https://app.example.com/callback").
		Return(&auth.Identity{Provider: auth.ProviderAuth0, Subject: sub, Email: "a@b.com"}, nil)
	suite.mockUsers.EXPECT().GetByAuth0Sub(gomock.Any(), sub).Return(user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), user.ID).Return(&models.OnboardingProgress{}, nil)
	suite.expectSessionFor(user)

	resp, err := svc.OAuthExchange(suite.ctx, &service.OAuthExchangeRequest{
		Code:        "code-123",
		RedirectURI: "https://app.example.com/callback",
	}, suite.meta)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user, resp.User)
}

// TestResolveIdentityLinksVerifiedEmail tests linking a subject to an existing account
func (suite *AccountServiceTestSuite) TestResolveIdentityLinksVerifiedEmail() {
	svc := suite.newService(auth.ProviderAuth0)
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@b.com", IsActive: true}

	suite.mockUsers.EXPECT().GetByAuth0Sub(gomock.Any(), "auth0|abc").Return(nil, apperrors.ErrUserNotFound)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(user, nil)
	suite.mockUsers.EXPECT().Update(gomock.Any(), user).Return(nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), user.ID).Return(&models.OnboardingProgress{}, nil)

	got, err := svc.ResolveIdentity(suite.ctx, &auth.Identity{Subject: "auth0|abc", Email: "a@b.com", EmailVerified: true})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "auth0|abc", *got.Auth0Sub)
}

// TestResolveIdentityRejectsUnverifiedLink tests that unverified emails cannot claim accounts
func (suite *AccountServiceTestSuite) TestResolveIdentityRejectsUnverifiedLink() {
	svc := suite.newService(auth.ProviderAuth0)
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@b.com", IsActive: true}

	suite.mockUsers.EXPECT().GetByAuth0Sub(gomock.Any(), "auth0|abc").Return(nil, apperrors.ErrUserNotFound)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(user, nil)

	_, err := svc.ResolveIdentity(suite.ctx, &auth.Identity{Subject: "auth0|abc", Email: "a@b.com"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailNotVerified)
	assert.Nil(suite.T(), user.Auth0Sub)
}

// TestResolveIdentityCreateRace tests that a lost insert race re-reads the winner
func (suite *AccountServiceTestSuite) TestResolveIdentityCreateRace() {
	svc := suite.newService(auth.ProviderAuth0)
	sub := "auth0|abc"
	winner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@b.com", Auth0Sub: &sub, IsActive: true}

	gomock.InOrder(
		suite.mockUsers.EXPECT().GetByAuth0Sub(gomock.Any(), sub).Return(nil, apperrors.ErrUserNotFound),
		suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(nil, apperrors.ErrUserNotFound),
		suite.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserExists),
		suite.mockUsers.EXPECT().GetByAuth0Sub(gomock.Any(), sub).Return(winner, nil),
	)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), winner.ID).Return(nil, apperrors.ErrOnboardingProgressNotFound)
	suite.mockProgress.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrOnboardingProgressExists)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), winner.ID).Return(&models.OnboardingProgress{}, nil)

	got, err := svc.ResolveIdentity(suite.ctx, &auth.Identity{Subject: sub, Email: "a@b.com", EmailVerified: true})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), winner.ID, got.ID)
}

// TestResolveIdentityInactiveUser tests that disabled accounts cannot log in
func (suite *AccountServiceTestSuite) TestResolveIdentityInactiveUser() {
	svc := suite.newService(auth.ProviderLocal)
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@b.com", IsActive: false}

	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(user, nil)

	_, err := svc.ResolveIdentity(suite.ctx, &auth.Identity{Email: "a@b.com"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
}

// TestResolveIdentityWithoutEmail tests that identities must carry an email
func (suite *AccountServiceTestSuite) TestResolveIdentityWithoutEmail() {
	svc := suite.newService(auth.ProviderAuth0)

	_, err := svc.ResolveIdentity(suite.ctx, &auth.Identity{Subject: "auth0|abc"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrIdentityEmailMissing)
}

// TestSignupCreatesLocalUser tests local registration
func (suite *AccountServiceTestSuite) TestSignupCreatesLocalUser() {
	svc := suite.newService(auth.ProviderLocal)
	var created *models.User
	suite.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			created = u
			return nil
		})
	suite.expectFreshProgress()
	suite.mockSessions.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.UserSession{SessionID: uuid.New(), IsActive: true}, nil)
	suite.mockTokens.EXPECT().GenerateJWT(gomock.Any()).Return("signed.jwt", time.Now(), nil)

	resp, err := svc.Signup(suite.ctx, &service.SignupRequest{
		Email:     "a@b.com",
		Password:  "correct-horse",
		FirstName: "Ada",
	}, suite.meta)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), created)
	assert.NotEqual(suite.T(), "correct-horse", created.PasswordHash)
	assert.NoError(suite.T(), auth.CheckPassword(created.PasswordHash, "correct-horse"))
	assert.Equal(suite.T(), models.UserRoleOwner, created.Role)
	assert.True(suite.T(), resp.NeedsOnboarding)
}

// TestSignupDuplicateEmail tests that concurrent signups yield a single account
func (suite *AccountServiceTestSuite) TestSignupDuplicateEmail() {
	svc := suite.newService(auth.ProviderLocal)
	suite.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserExists)

	_, err := svc.Signup(suite.ctx, &service.SignupRequest{Email: "a@b.com", Password: "correct-horse"}, suite.meta)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestSignupShortPassword tests password validation
func (suite *AccountServiceTestSuite) TestSignupShortPassword() {
	svc := suite.newService(auth.ProviderLocal)

	_, err := svc.Signup(suite.ctx, &service.SignupRequest{Email: "a@b.com", Password: "short"}, suite.meta)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "password")
}

// TestSignupDisabledWithAuth0 tests that signup is local only
func (suite *AccountServiceTestSuite) TestSignupDisabledWithAuth0() {
	svc := suite.newService(auth.ProviderAuth0)

	_, err := svc.Signup(suite.ctx, &service.SignupRequest{Email: "a@b.com", Password: "correct-horse"}, suite.meta)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSignupDisabled)
}

// TestStartSessionInactiveUser tests that disabled users cannot open sessions
func (suite *AccountServiceTestSuite) TestStartSessionInactiveUser() {
	svc := suite.newService(auth.ProviderAuth0)
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, IsActive: false}
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	_, err := svc.StartSession(suite.ctx, user.ID, "", suite.meta)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
}

// TestSessionProfile tests describing an existing session
func (suite *AccountServiceTestSuite) TestSessionProfile() {
	svc := suite.newService(auth.ProviderAuth0)
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}}
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: &tenant.ID, IsActive: true}
	session := &models.UserSession{
		SessionID:       uuid.New(),
		UserID:          user.ID,
		TenantID:        &tenant.ID,
		ExpiresAt:       time.Now().Add(time.Hour),
		IsActive:        true,
		NeedsOnboarding: true,
		OnboardingStep:  "payment",
	}

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), tenant.ID).Return(tenant, nil)

	resp, err := svc.SessionProfile(suite.ctx, session)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), session.SessionID.String(), resp.SessionToken)
	assert.Equal(suite.T(), session.ExpiresAt, resp.ExpiresAt)
	assert.Equal(suite.T(), tenant, resp.Tenant)
	assert.Equal(suite.T(), models.StepPayment, resp.OnboardingStep)
	assert.Empty(suite.T(), resp.AccessToken)
}

// TestAccountServiceTestSuite runs the test suite
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

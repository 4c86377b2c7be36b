package service_test

import (
	"context"
	"testing"
	"time"

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

// OnboardingServiceTestSuite defines the test suite for OnboardingService
type OnboardingServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTx            *mocks.MockTransactorInterface
	mockUsers         *mocks.MockUserRepositoryInterface
	mockTenants       *mocks.MockTenantRepositoryInterface
	mockBusinesses    *mocks.MockBusinessRepositoryInterface
	mockProgress      *mocks.MockOnboardingProgressRepositoryInterface
	mockSessions      *mocks.MockSessionServiceInterface
	onboardingService *service.OnboardingService
	ctx               context.Context
	user              *models.User
}

func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockBusinesses = mocks.NewMockBusinessRepositoryInterface(suite.ctrl)
	suite.mockProgress = mocks.NewMockOnboardingProgressRepositoryInterface(suite.ctrl)
	suite.mockSessions = mocks.NewMockSessionServiceInterface(suite.ctrl)
	suite.ctx = context.Background()

	suite.mockTx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	suite.onboardingService = service.NewOnboardingService(
		suite.mockTx,
		suite.mockUsers,
		suite.mockTenants,
		suite.mockBusinesses,
		suite.mockProgress,
		suite.mockSessions,
		service.NewValidator(),
	)
	suite.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "a@b.com",
		Role:      models.UserRoleOwner,
		IsActive:  true,
	}
}

func (suite *OnboardingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingServiceTestSuite) progressAt(step models.OnboardingStep, done ...string) *models.OnboardingProgress {
	p := &models.OnboardingProgress{
		UserID:           suite.user.ID,
		OnboardingStatus: models.OnboardingStatusInProgress,
		CurrentStep:      step,
		CompletedSteps:   done,
	}
	if suite.user.TenantID != nil {
		tenantID := *suite.user.TenantID
		p.TenantID = &tenantID
	}
	return p
}

func (suite *OnboardingServiceTestSuite) expectSync() {
	suite.mockSessions.EXPECT().SyncOnboarding(gomock.Any(), suite.user).Return(nil)
}

// TestSubmitBusinessInfoCreatesTenant tests the first business info submission
func (suite *OnboardingServiceTestSuite) TestSubmitBusinessInfoCreatesTenant() {
	tenantID := uuid.New()
	progress := &models.OnboardingProgress{UserID: suite.user.ID, CurrentStep: models.StepBusinessInfo, CompletedSteps: []string{}}

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(nil, apperrors.ErrTenantNotFound)
	suite.mockTenants.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, t *models.Tenant) error {
			assert.Equal(suite.T(), "Acme", t.Name)
			assert.Equal(suite.T(), suite.user.ID.String(), t.OwnerID)
			assert.True(suite.T(), t.IsActive)
			t.ID = tenantID
			return nil
		})
	suite.mockBusinesses.EXPECT().GetByTenantID(gomock.Any(), tenantID).Return(nil, apperrors.ErrBusinessNotFound)
	suite.mockBusinesses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *models.Business) error {
			assert.Equal(suite.T(), tenantID, b.TenantID)
			assert.Equal(suite.T(), "Acme", b.Name)
			assert.Equal(suite.T(), "KE", b.Country)
			return nil
		})
	suite.mockUsers.EXPECT().Update(gomock.Any(), suite.user).Return(nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.SubmitBusinessInfo(suite.ctx, suite.user.ID, &service.BusinessInfoRequest{
		BusinessName: "Acme",
		Country:      "KE",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenantID, *suite.user.TenantID)
	assert.Equal(suite.T(), tenantID, *status.TenantID)
	assert.Equal(suite.T(), models.StepSubscription, status.CurrentStep)
	assert.Equal(suite.T(), []string{"business_info"}, status.CompletedSteps)
	assert.Equal(suite.T(), models.OnboardingStatusInProgress, status.OnboardingStatus)
	assert.True(suite.T(), status.NeedsOnboarding)
}

// TestSubmitBusinessInfoUpdatesExisting tests resubmitting business info
func (suite *OnboardingServiceTestSuite) TestSubmitBusinessInfoUpdatesExisting() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme", OwnerID: suite.user.ID.String()}
	suite.user.TenantID = &tenant.ID
	business := &models.Business{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenant.ID, Name: "Acme"}
	progress := suite.progressAt(models.StepSubscription, "business_info")

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(tenant, nil)
	suite.mockBusinesses.EXPECT().GetByTenantID(gomock.Any(), tenant.ID).Return(business, nil)
	suite.mockBusinesses.EXPECT().Update(gomock.Any(), business).Return(nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.SubmitBusinessInfo(suite.ctx, suite.user.ID, &service.BusinessInfoRequest{
		BusinessName: "Acme Roasters",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Roasters", business.Name)
	assert.Equal(suite.T(), []string{"business_info"}, status.CompletedSteps)
}

// TestSubmitBusinessInfoTenantRace tests that a concurrently created tenant is re-read
func (suite *OnboardingServiceTestSuite) TestSubmitBusinessInfoTenantRace() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: suite.user.ID.String()}
	progress := &models.OnboardingProgress{UserID: suite.user.ID}

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	gomock.InOrder(
		suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(nil, apperrors.ErrTenantNotFound),
		suite.mockTenants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrTenantExists),
		suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(tenant, nil),
	)
	suite.mockBusinesses.EXPECT().GetByTenantID(gomock.Any(), tenant.ID).Return(nil, apperrors.ErrBusinessNotFound)
	suite.mockBusinesses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockUsers.EXPECT().Update(gomock.Any(), suite.user).Return(nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.SubmitBusinessInfo(suite.ctx, suite.user.ID, &service.BusinessInfoRequest{BusinessName: "Acme"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenant.ID, *status.TenantID)
}

// TestSubmitBusinessInfoValidation tests that a missing business name is rejected
func (suite *OnboardingServiceTestSuite) TestSubmitBusinessInfoValidation() {
	_, err := suite.onboardingService.SubmitBusinessInfo(suite.ctx, suite.user.ID, &service.BusinessInfoRequest{})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "business_name")
}

// TestSelectFreePlanSkipsPayment tests that the free plan goes straight to setup
func (suite *OnboardingServiceTestSuite) TestSelectFreePlanSkipsPayment() {
	tenantID := uuid.New()
	suite.user.TenantID = &tenantID
	progress := suite.progressAt(models.StepSubscription, "business_info")

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.SelectSubscription(suite.ctx, suite.user.ID, &service.SubscriptionRequest{
		SelectedPlan: models.PlanFree,
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), status.PaymentCompleted)
	assert.Equal(suite.T(), models.StepSetup, status.CurrentStep)
	assert.Equal(suite.T(), models.BillingMonthly, status.BillingCycle)
	assert.Equal(suite.T(), []string{"business_info", "subscription", "payment"}, status.CompletedSteps)
}

// TestSelectPaidPlanThenPay tests the payment step of a paid plan
func (suite *OnboardingServiceTestSuite) TestSelectPaidPlanThenPay() {
	tenantID := uuid.New()
	suite.user.TenantID = &tenantID
	progress := suite.progressAt(models.StepSubscription, "business_info")

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil).Times(2)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil).Times(2)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil).Times(2)
	suite.mockSessions.EXPECT().SyncOnboarding(gomock.Any(), suite.user).Return(nil).Times(2)

	status, err := suite.onboardingService.SelectSubscription(suite.ctx, suite.user.ID, &service.SubscriptionRequest{
		SelectedPlan: models.PlanProfessional,
		BillingCycle: models.BillingAnnual,
	})
	require.NoError(suite.T(), err)
	assert.False(suite.T(), status.PaymentCompleted)
	assert.Equal(suite.T(), models.StepPayment, status.CurrentStep)

	status, err = suite.onboardingService.CompletePayment(suite.ctx, suite.user.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), status.PaymentCompleted)
	assert.Equal(suite.T(), models.StepSetup, status.CurrentStep)
	assert.Equal(suite.T(), []string{"business_info", "subscription", "payment"}, status.CompletedSteps)
}

// TestCompletePaymentOnFreePlan tests that the free plan has nothing to pay
func (suite *OnboardingServiceTestSuite) TestCompletePaymentOnFreePlan() {
	progress := suite.progressAt(models.StepSetup, "business_info", "subscription", "payment")
	progress.SelectedPlan = models.PlanFree

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)

	_, err := suite.onboardingService.CompletePayment(suite.ctx, suite.user.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPaymentNotRequired)
}

// TestChangePlan tests re-selecting a plan before onboarding completes
func (suite *OnboardingServiceTestSuite) TestChangePlan() {
	tenantID := uuid.New()
	suite.user.TenantID = &tenantID

	tests := []struct {
		name        string
		current     models.SubscriptionPlan
		paid        bool
		done        []string
		next        models.SubscriptionPlan
		wantPaid    bool
		wantCurrent models.OnboardingStep
		wantSteps   []string
	}{
		{
			name:        "free to paid",
			current:     models.PlanFree,
			paid:        true,
			done:        []string{"business_info", "subscription", "payment"},
			next:        models.PlanEnterprise,
			wantPaid:    false,
			wantCurrent: models.StepPayment,
			wantSteps:   []string{"business_info", "subscription"},
		},
		{
			name:        "paid to free",
			current:     models.PlanProfessional,
			done:        []string{"business_info", "subscription"},
			next:        models.PlanFree,
			wantPaid:    true,
			wantCurrent: models.StepSetup,
			wantSteps:   []string{"business_info", "subscription", "payment"},
		},
		{
			name:        "paid to paid after payment",
			current:     models.PlanProfessional,
			paid:        true,
			done:        []string{"business_info", "subscription", "payment"},
			next:        models.PlanEnterprise,
			wantPaid:    true,
			wantCurrent: models.StepSetup,
			wantSteps:   []string{"business_info", "subscription", "payment"},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			progress := suite.progressAt(models.StepSetup, tt.done...)
			progress.SelectedPlan = tt.current
			progress.SubscriptionPlan = tt.current
			progress.PaymentCompleted = tt.paid

			suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
			suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
			suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
			suite.expectSync()

			status, err := suite.onboardingService.SelectSubscription(suite.ctx, suite.user.ID, &service.SubscriptionRequest{
				SelectedPlan: tt.next,
			})

			suite.Require().NoError(err)
			suite.Equal(tt.wantPaid, status.PaymentCompleted)
			suite.Equal(tt.wantCurrent, status.CurrentStep)
			suite.Equal(tt.wantSteps, status.CompletedSteps)
			suite.Equal(tt.next, status.SelectedPlan)
		})
	}
}

// TestSubmitBusinessInfoAfterSubscription tests that a business info retry keeps the current step
func (suite *OnboardingServiceTestSuite) TestSubmitBusinessInfoAfterSubscription() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme", OwnerID: suite.user.ID.String()}
	suite.user.TenantID = &tenant.ID
	business := &models.Business{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenant.ID, Name: "Acme"}
	progress := suite.progressAt(models.StepSetup, "business_info", "subscription", "payment")
	progress.SelectedPlan = models.PlanFree
	progress.PaymentCompleted = true

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(tenant, nil)
	suite.mockBusinesses.EXPECT().GetByTenantID(gomock.Any(), tenant.ID).Return(business, nil)
	suite.mockBusinesses.EXPECT().Update(gomock.Any(), business).Return(nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.SubmitBusinessInfo(suite.ctx, suite.user.ID, &service.BusinessInfoRequest{
		BusinessName: "Acme",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StepSetup, status.CurrentStep)
	assert.Equal(suite.T(), models.StepComplete, status.NextStep)
	assert.True(suite.T(), status.PaymentCompleted)
}

// TestSelectSubscriptionBeforeBusinessInfo tests the step ordering
func (suite *OnboardingServiceTestSuite) TestSelectSubscriptionBeforeBusinessInfo() {
	progress := &models.OnboardingProgress{UserID: suite.user.ID, CurrentStep: models.StepBusinessInfo}

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)

	_, err := suite.onboardingService.SelectSubscription(suite.ctx, suite.user.ID, &service.SubscriptionRequest{
		SelectedPlan: models.PlanFree,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBusinessInfoRequired)
}

// TestSelectSubscriptionInvalidPlan tests that unknown plans are rejected
func (suite *OnboardingServiceTestSuite) TestSelectSubscriptionInvalidPlan() {
	progress := suite.progressAt(models.StepSubscription, "business_info")

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)

	_, err := suite.onboardingService.SelectSubscription(suite.ctx, suite.user.ID, &service.SubscriptionRequest{
		SelectedPlan: "platinum",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPlan)
}

// TestComplete tests finishing onboarding
func (suite *OnboardingServiceTestSuite) TestComplete() {
	tenantID := uuid.New()
	suite.user.TenantID = &tenantID
	progress := suite.progressAt(models.StepSetup, "business_info", "subscription", "payment")

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.mockUsers.EXPECT().Update(gomock.Any(), suite.user).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.Complete(suite.ctx, suite.user.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), suite.user.OnboardingCompleted)
	assert.False(suite.T(), status.NeedsOnboarding)
	assert.True(suite.T(), status.SetupCompleted)
	assert.Equal(suite.T(), models.OnboardingStatusComplete, status.OnboardingStatus)
	assert.Equal(suite.T(), []string{"business_info", "subscription", "payment", "setup", "complete"}, status.CompletedSteps)
	assert.NotNil(suite.T(), progress.CompletedAt)
}

// TestCompleteIsIdempotent tests completing an already completed onboarding
func (suite *OnboardingServiceTestSuite) TestCompleteIsIdempotent() {
	tenantID := uuid.New()
	suite.user.TenantID = &tenantID
	suite.user.OnboardingCompleted = true
	completedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	progress := suite.progressAt(models.StepComplete, "business_info", "subscription", "payment", "setup", "complete")
	progress.OnboardingStatus = models.OnboardingStatusComplete
	progress.CompletedAt = &completedAt

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.Complete(suite.ctx, suite.user.ID)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), status.CompletedSteps, 5)
	assert.Equal(suite.T(), completedAt, *progress.CompletedAt)
}

// TestCompleteFallsBackToOwnedTenant tests resolving the tenant through ownership
func (suite *OnboardingServiceTestSuite) TestCompleteFallsBackToOwnedTenant() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: suite.user.ID.String()}
	progress := &models.OnboardingProgress{UserID: suite.user.ID}

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(tenant, nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)
	suite.mockUsers.EXPECT().Update(gomock.Any(), suite.user).Return(nil)
	suite.expectSync()

	status, err := suite.onboardingService.Complete(suite.ctx, suite.user.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenant.ID, *suite.user.TenantID)
	assert.Equal(suite.T(), tenant.ID, *status.TenantID)
}

// TestCompleteWithoutTenant tests that onboarding cannot finish without a tenant
func (suite *OnboardingServiceTestSuite) TestCompleteWithoutTenant() {
	progress := &models.OnboardingProgress{UserID: suite.user.ID}

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockTenants.EXPECT().GetByOwnerID(gomock.Any(), suite.user.ID.String()).Return(nil, apperrors.ErrTenantNotFound)

	_, err := suite.onboardingService.Complete(suite.ctx, suite.user.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOnboardingTenantUnresolved)
	assert.False(suite.T(), suite.user.OnboardingCompleted)
}

// TestGetStatusReconcilesStaleProgress tests that a completed user wins over stale progress
func (suite *OnboardingServiceTestSuite) TestGetStatusReconcilesStaleProgress() {
	tenantID := uuid.New()
	suite.user.TenantID = &tenantID
	suite.user.OnboardingCompleted = true
	progress := suite.progressAt(models.StepPayment, "business_info", "subscription")

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(progress, nil)
	suite.mockProgress.EXPECT().Update(gomock.Any(), progress).Return(nil)

	status, err := suite.onboardingService.GetStatus(suite.ctx, suite.user.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OnboardingStatusComplete, status.OnboardingStatus)
	assert.Equal(suite.T(), models.StepComplete, status.CurrentStep)
	assert.False(suite.T(), status.NeedsOnboarding)
}

// TestGetStatusCreatesProgress tests the status of a user who never started onboarding
func (suite *OnboardingServiceTestSuite) TestGetStatusCreatesProgress() {
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.mockProgress.EXPECT().GetByUserID(gomock.Any(), suite.user.ID).Return(nil, apperrors.ErrOnboardingProgressNotFound)
	suite.mockProgress.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	status, err := suite.onboardingService.GetStatus(suite.ctx, suite.user.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OnboardingStatusNotStarted, status.OnboardingStatus)
	assert.Equal(suite.T(), models.StepBusinessInfo, status.CurrentStep)
	assert.Empty(suite.T(), status.CompletedSteps)
	assert.True(suite.T(), status.NeedsOnboarding)
}

// TestOnboardingServiceTestSuite runs the test suite
func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}

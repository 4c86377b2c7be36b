//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OnboardingRepositoriesTestSuite covers tenants, businesses and onboarding progress
type OnboardingRepositoriesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	users         *UserRepository
	tenants       *TenantRepository
	businesses    *BusinessRepository
	progress      *OnboardingProgressRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *OnboardingRepositoriesTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.users = NewUserRepository(db)
	suite.tenants = NewTenantRepository(db)
	suite.businesses = NewBusinessRepository(db)
	suite.progress = NewOnboardingProgressRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *OnboardingRepositoriesTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OnboardingRepositoriesTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OnboardingRepositoriesTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OnboardingRepositoriesTestSuite) TestProgressRoundTrip() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(suite.ctx, user))

	progress := &models.OnboardingProgress{
		UserID:           user.ID,
		OnboardingStatus: models.OnboardingStatusInProgress,
		CurrentStep:      models.StepSubscription,
		NextStep:         models.StepPayment,
		CompletedSteps:   []string{string(models.StepBusinessInfo)},
	}
	suite.Require().NoError(suite.progress.Create(suite.ctx, progress))

	found, err := suite.progress.GetByUserID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal([]string{"business_info"}, found.CompletedSteps)
	suite.True(found.HasCompleted(models.StepBusinessInfo))

	found.CompletedSteps = append(found.CompletedSteps, string(models.StepSubscription))
	found.SelectedPlan = models.PlanProfessional
	suite.NoError(suite.progress.Update(suite.ctx, found))

	again, err := suite.progress.GetByUserID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal([]string{"business_info", "subscription"}, again.CompletedSteps)
	suite.Equal(models.PlanProfessional, again.SelectedPlan)
}

func (suite *OnboardingRepositoriesTestSuite) TestProgressOnePerUser() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	suite.Require().NoError(suite.progress.Create(suite.ctx, &models.OnboardingProgress{UserID: user.ID}))

	err := suite.progress.Create(suite.ctx, &models.OnboardingProgress{UserID: user.ID})

	suite.ErrorIs(err, apperrors.ErrOnboardingProgressExists)
}

func (suite *OnboardingRepositoriesTestSuite) TestProgressNotFound() {
	_, err := suite.progress.GetByUserID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrOnboardingProgressNotFound)
}

func (suite *OnboardingRepositoriesTestSuite) TestTenantByOwnerWithBusiness() {
	owner := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(suite.ctx, owner))
	tenant := suite.factories.Tenant.WithOwner(owner)
	suite.Require().NoError(suite.tenants.Create(suite.ctx, tenant))

	business := &models.Business{TenantID: tenant.ID, OwnerID: owner.ID, Name: "Acme"}
	suite.Require().NoError(suite.businesses.Create(suite.ctx, business))

	found, err := suite.tenants.GetByOwnerID(suite.ctx, owner.ID.String())
	suite.NoError(err)
	suite.Equal(tenant.ID, found.ID)

	err = suite.tenants.Create(suite.ctx, suite.factories.Tenant.WithOwner(owner))
	suite.ErrorIs(err, apperrors.ErrTenantExists)

	err = suite.businesses.Create(suite.ctx, &models.Business{TenantID: tenant.ID, OwnerID: owner.ID, Name: "Other"})
	suite.ErrorIs(err, apperrors.ErrBusinessExists)

	tenants, total, err := suite.tenants.GetAll(suite.ctx, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(tenants, 1)
	suite.Require().NotNil(tenants[0].Business)
	suite.Equal("Acme", tenants[0].Business.Name)
}

func (suite *OnboardingRepositoriesTestSuite) TestBusinessNotFound() {
	_, err := suite.businesses.GetByTenantID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrBusinessNotFound)
}

func TestOnboardingRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingRepositoriesTestSuite))
}

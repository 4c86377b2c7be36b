package onboarding

import (
	"testing"
	"time"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBusinessInfo(t *testing.T) (*models.OnboardingProgress, uuid.UUID) {
	t.Helper()
	p := New(uuid.New())
	tenantID := uuid.New()
	CompleteBusinessInfo(p, tenantID)
	return p, tenantID
}

func TestNew(t *testing.T) {
	userID := uuid.New()
	p := New(userID)

	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, models.OnboardingStatusNotStarted, p.OnboardingStatus)
	assert.Equal(t, models.StepBusinessInfo, p.CurrentStep)
	assert.Empty(t, p.CompletedSteps)
}

func TestCompleteBusinessInfo(t *testing.T) {
	p, tenantID := withBusinessInfo(t)

	assert.Equal(t, models.StepSubscription, p.CurrentStep)
	assert.Equal(t, models.StepPayment, p.NextStep)
	assert.Equal(t, models.OnboardingStatusInProgress, p.OnboardingStatus)
	assert.Equal(t, []string{"business_info"}, p.CompletedSteps)
	require.NotNil(t, p.TenantID)
	assert.Equal(t, tenantID, *p.TenantID)

	// retried step does not duplicate
	CompleteBusinessInfo(p, tenantID)
	assert.Equal(t, []string{"business_info"}, p.CompletedSteps)
}

func TestSelectSubscription(t *testing.T) {
	t.Run("free plan skips payment", func(t *testing.T) {
		p, _ := withBusinessInfo(t)

		require.NoError(t, SelectSubscription(p, models.PlanFree, models.BillingMonthly))

		assert.True(t, p.PaymentCompleted)
		assert.Equal(t, []string{"business_info", "subscription", "payment"}, p.CompletedSteps)
		assert.Equal(t, models.StepSetup, p.CurrentStep)
		assert.Equal(t, models.PlanFree, p.SelectedPlan)
		assert.Equal(t, models.PlanFree, p.SubscriptionPlan)
	})

	t.Run("paid plan advances to payment", func(t *testing.T) {
		p, _ := withBusinessInfo(t)

		require.NoError(t, SelectSubscription(p, models.PlanProfessional, models.BillingAnnual))

		assert.False(t, p.PaymentCompleted)
		assert.Equal(t, []string{"business_info", "subscription"}, p.CompletedSteps)
		assert.Equal(t, models.StepPayment, p.CurrentStep)
		assert.Equal(t, models.BillingAnnual, p.BillingCycle)
	})

	t.Run("billing cycle defaults to monthly", func(t *testing.T) {
		p, _ := withBusinessInfo(t)
		require.NoError(t, SelectSubscription(p, models.PlanEnterprise, ""))
		assert.Equal(t, models.BillingMonthly, p.BillingCycle)
	})

	t.Run("validation", func(t *testing.T) {
		p, _ := withBusinessInfo(t)
		assert.ErrorIs(t, SelectSubscription(p, "gold", models.BillingMonthly), apperrors.ErrInvalidPlan)
		assert.ErrorIs(t, SelectSubscription(p, models.PlanFree, "weekly"), apperrors.ErrInvalidBillingCycle)
		assert.ErrorIs(t, SelectSubscription(New(uuid.New()), models.PlanFree, ""), apperrors.ErrBusinessInfoRequired)
	})
}

func TestCompletePayment(t *testing.T) {
	p, _ := withBusinessInfo(t)
	assert.ErrorIs(t, CompletePayment(p), apperrors.ErrPlanNotSelected)

	require.NoError(t, SelectSubscription(p, models.PlanProfessional, models.BillingMonthly))
	require.NoError(t, CompletePayment(p))
	require.NoError(t, CompletePayment(p))

	assert.True(t, p.PaymentCompleted)
	assert.Equal(t, models.StepSetup, p.CurrentStep)
	assert.Equal(t, []string{"business_info", "subscription", "payment"}, p.CompletedSteps)

	free, _ := withBusinessInfo(t)
	require.NoError(t, SelectSubscription(free, models.PlanFree, ""))
	assert.ErrorIs(t, CompletePayment(free), apperrors.ErrPaymentNotRequired)
}

func TestPlanChanges(t *testing.T) {
	tests := []struct {
		name        string
		plans       []models.SubscriptionPlan
		pay         bool
		wantPaid    bool
		wantCurrent models.OnboardingStep
		wantSteps   []string
	}{
		{
			name:        "free to paid requires payment",
			plans:       []models.SubscriptionPlan{models.PlanFree, models.PlanEnterprise},
			wantPaid:    false,
			wantCurrent: models.StepPayment,
			wantSteps:   []string{"business_info", "subscription"},
		},
		{
			name:        "unpaid paid plan to free skips payment",
			plans:       []models.SubscriptionPlan{models.PlanProfessional, models.PlanFree},
			wantPaid:    true,
			wantCurrent: models.StepSetup,
			wantSteps:   []string{"business_info", "subscription", "payment"},
		},
		{
			name:        "paid plan switch keeps payment",
			plans:       []models.SubscriptionPlan{models.PlanProfessional, models.PlanEnterprise},
			pay:         true,
			wantPaid:    true,
			wantCurrent: models.StepSetup,
			wantSteps:   []string{"business_info", "subscription", "payment"},
		},
		{
			name:        "paid to free to paid requires payment again",
			plans:       []models.SubscriptionPlan{models.PlanProfessional, models.PlanFree, models.PlanProfessional},
			wantPaid:    false,
			wantCurrent: models.StepPayment,
			wantSteps:   []string{"business_info", "subscription"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := withBusinessInfo(t)
			for i, plan := range tt.plans {
				require.NoError(t, SelectSubscription(p, plan, models.BillingMonthly))
				if i == 0 && tt.pay {
					require.NoError(t, CompletePayment(p))
				}
			}

			assert.Equal(t, tt.wantPaid, p.PaymentCompleted)
			assert.Equal(t, tt.wantCurrent, p.CurrentStep)
			assert.Equal(t, tt.wantSteps, p.CompletedSteps)
			assert.Equal(t, tt.plans[len(tt.plans)-1], p.SelectedPlan)
			assert.Equal(t, models.OnboardingStatusInProgress, p.OnboardingStatus)
		})
	}
}

func TestBusinessInfoRetryDoesNotMoveBack(t *testing.T) {
	t.Run("after free plan", func(t *testing.T) {
		p, tenantID := withBusinessInfo(t)
		require.NoError(t, SelectSubscription(p, models.PlanFree, ""))

		CompleteBusinessInfo(p, tenantID)

		assert.Equal(t, models.StepSetup, p.CurrentStep)
		assert.Equal(t, models.StepComplete, p.NextStep)
		assert.True(t, p.PaymentCompleted)
	})

	t.Run("after unpaid paid plan", func(t *testing.T) {
		p, tenantID := withBusinessInfo(t)
		require.NoError(t, SelectSubscription(p, models.PlanProfessional, ""))

		CompleteBusinessInfo(p, tenantID)

		assert.Equal(t, models.StepPayment, p.CurrentStep)
		assert.Equal(t, models.StepSetup, p.NextStep)
		assert.False(t, p.PaymentCompleted)
	})

	t.Run("after payment", func(t *testing.T) {
		p, tenantID := withBusinessInfo(t)
		require.NoError(t, SelectSubscription(p, models.PlanProfessional, ""))
		require.NoError(t, CompletePayment(p))

		CompleteBusinessInfo(p, tenantID)

		assert.Equal(t, models.StepSetup, p.CurrentStep)
		assert.Equal(t, []string{"business_info", "subscription", "payment"}, p.CompletedSteps)
	})
}

func TestCompleteIsIdempotent(t *testing.T) {
	p, tenantID := withBusinessInfo(t)
	require.NoError(t, SelectSubscription(p, models.PlanFree, ""))

	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, Complete(p, tenantID, first))
	require.NoError(t, Complete(p, tenantID, first.Add(time.Hour)))

	assert.Equal(t, []string{"business_info", "subscription", "payment", "setup", "complete"}, p.CompletedSteps)
	assert.Equal(t, models.OnboardingStatusComplete, p.OnboardingStatus)
	assert.True(t, p.SetupCompleted)
	require.NotNil(t, p.CompletedAt)
	assert.Equal(t, first, *p.CompletedAt)
}

func TestCompleteRequiresTenant(t *testing.T) {
	p := New(uuid.New())
	err := Complete(p, uuid.Nil, time.Now())

	assert.ErrorIs(t, err, apperrors.ErrOnboardingTenantUnresolved)
	assert.NotEqual(t, models.OnboardingStatusComplete, p.OnboardingStatus)
}

func TestStepsAfterCompletionKeepStatus(t *testing.T) {
	p, tenantID := withBusinessInfo(t)
	require.NoError(t, Complete(p, tenantID, time.Now()))

	CompleteBusinessInfo(p, tenantID)
	require.NoError(t, SelectSubscription(p, models.PlanProfessional, models.BillingMonthly))

	assert.Equal(t, models.OnboardingStatusComplete, p.OnboardingStatus)
	assert.Equal(t, models.StepComplete, p.CurrentStep)
}

func TestReconcile(t *testing.T) {
	tenantID := uuid.New()
	user := &models.User{OnboardingCompleted: true, TenantID: &tenantID}
	p := New(uuid.New())

	assert.True(t, Reconcile(p, user, time.Now()))
	assert.Equal(t, models.OnboardingStatusComplete, p.OnboardingStatus)
	assert.False(t, Reconcile(p, user, time.Now()))

	pending := New(uuid.New())
	assert.False(t, Reconcile(pending, &models.User{}, time.Now()))
	assert.Equal(t, models.OnboardingStatusNotStarted, pending.OnboardingStatus)
}

func TestSnapshotTrustsUserFlag(t *testing.T) {
	p, tenantID := withBusinessInfo(t)
	require.NoError(t, Complete(p, tenantID, time.Now()))

	status := Snapshot(p, &models.User{OnboardingCompleted: false})
	assert.True(t, status.NeedsOnboarding)

	status = Snapshot(New(uuid.New()), &models.User{OnboardingCompleted: true, TenantID: &tenantID})
	assert.False(t, status.NeedsOnboarding)
	assert.Equal(t, &tenantID, status.TenantID)
	assert.NotNil(t, status.CompletedSteps)
}

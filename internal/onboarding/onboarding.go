// Package onboarding holds the onboarding state machine. Functions mutate the
// progress record in place and never touch storage; callers persist the result.
package onboarding

import (
	"time"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
)

// Status is the snapshot returned by the status endpoint
type Status struct {
	OnboardingStatus models.OnboardingStatus `json:"onboarding_status"`
	CurrentStep      models.OnboardingStep   `json:"current_step"`
	NextStep         models.OnboardingStep   `json:"next_step"`
	CompletedSteps   []string                `json:"completed_steps"`
	SelectedPlan     models.SubscriptionPlan `json:"selected_plan"`
	BillingCycle     models.BillingCycle     `json:"billing_cycle"`
	PaymentCompleted bool                    `json:"payment_completed"`
	SetupCompleted   bool                    `json:"setup_completed"`
	TenantID         *uuid.UUID              `json:"tenant_id"`
	NeedsOnboarding  bool                    `json:"needs_onboarding"`
}

// New returns a fresh progress record for a user
func New(userID uuid.UUID) *models.OnboardingProgress {
	return &models.OnboardingProgress{
		UserID:           userID,
		OnboardingStatus: models.OnboardingStatusNotStarted,
		CurrentStep:      models.StepBusinessInfo,
		NextStep:         models.StepSubscription,
		CompletedSteps:   []string{},
	}
}

// CompleteBusinessInfo records the business info step for tenantID.
func CompleteBusinessInfo(p *models.OnboardingProgress, tenantID uuid.UUID) {
	p.TenantID = &tenantID
	markStep(p, models.StepBusinessInfo)
	advance(p)
}

// SelectSubscription records the chosen plan. The free plan is marked paid and
// skips the payment step. Switching to a paid plan before onboarding completes
// requires payment again unless a paid plan was already paid for.
func SelectSubscription(p *models.OnboardingProgress, plan models.SubscriptionPlan, cycle models.BillingCycle) error {
	if !plan.IsValid() {
		return apperrors.ErrInvalidPlan
	}
	if cycle == "" {
		cycle = models.BillingMonthly
	}
	if !cycle.IsValid() {
		return apperrors.ErrInvalidBillingCycle
	}
	if p.TenantID == nil || !p.HasCompleted(models.StepBusinessInfo) {
		return apperrors.ErrBusinessInfoRequired
	}

	paidForPlan := p.PaymentCompleted && p.SelectedPlan.RequiresPayment()

	p.SelectedPlan = plan
	p.SubscriptionPlan = plan
	p.BillingCycle = cycle
	markStep(p, models.StepSubscription)

	switch {
	case !plan.RequiresPayment():
		p.PaymentCompleted = true
		markStep(p, models.StepPayment)
	case !paidForPlan && !IsComplete(p):
		p.PaymentCompleted = false
		unmarkStep(p, models.StepPayment)
	}
	advance(p)
	return nil
}

// CompletePayment marks the mocked payment step for a paid plan.
func CompletePayment(p *models.OnboardingProgress) error {
	if p.SelectedPlan == "" {
		return apperrors.ErrPlanNotSelected
	}
	if !p.SelectedPlan.RequiresPayment() {
		return apperrors.ErrPaymentNotRequired
	}

	p.PaymentCompleted = true
	markStep(p, models.StepPayment)
	advance(p)
	return nil
}

// Complete finishes onboarding for tenantID. Calling it again leaves the
// completed steps and completion time untouched.
func Complete(p *models.OnboardingProgress, tenantID uuid.UUID, now time.Time) error {
	if tenantID == uuid.Nil {
		return apperrors.ErrOnboardingTenantUnresolved
	}
	p.TenantID = &tenantID
	p.SetupCompleted = true
	p.OnboardingStatus = models.OnboardingStatusComplete
	p.CurrentStep = models.StepComplete
	p.NextStep = ""
	markStep(p, models.StepSetup)
	markStep(p, models.StepComplete)
	if p.CompletedAt == nil {
		completedAt := now
		p.CompletedAt = &completedAt
	}
	return nil
}

// IsComplete reports whether the progress record itself says onboarding is done
func IsComplete(p *models.OnboardingProgress) bool {
	return p.OnboardingStatus == models.OnboardingStatusComplete
}

// Reconcile brings a stale progress record in line with the user, whose
// OnboardingCompleted flag is authoritative. It reports whether p changed.
func Reconcile(p *models.OnboardingProgress, user *models.User, now time.Time) bool {
	if !user.OnboardingCompleted || IsComplete(p) {
		return false
	}
	tenantID := uuid.Nil
	if user.TenantID != nil {
		tenantID = *user.TenantID
	} else if p.TenantID != nil {
		tenantID = *p.TenantID
	}
	if tenantID == uuid.Nil {
		return false
	}
	_ = Complete(p, tenantID, now)
	return true
}

// NeedsOnboarding reports whether the user still has to go through onboarding
func NeedsOnboarding(user *models.User) bool {
	return !user.OnboardingCompleted
}

// Snapshot builds the status view of a progress record for user
func Snapshot(p *models.OnboardingProgress, user *models.User) Status {
	steps := p.CompletedSteps
	if steps == nil {
		steps = []string{}
	}
	tenantID := p.TenantID
	if tenantID == nil {
		tenantID = user.TenantID
	}
	return Status{
		OnboardingStatus: p.OnboardingStatus,
		CurrentStep:      p.CurrentStep,
		NextStep:         p.NextStep,
		CompletedSteps:   steps,
		SelectedPlan:     p.SelectedPlan,
		BillingCycle:     p.BillingCycle,
		PaymentCompleted: p.PaymentCompleted,
		SetupCompleted:   p.SetupCompleted,
		TenantID:         tenantID,
		NeedsOnboarding:  NeedsOnboarding(user),
	}
}

// advance derives the current and next step from what has been completed, so
// retrying an earlier step never moves the record backwards.
func advance(p *models.OnboardingProgress) {
	if IsComplete(p) {
		return
	}
	p.OnboardingStatus = models.OnboardingStatusInProgress
	switch {
	case !p.HasCompleted(models.StepBusinessInfo):
		p.CurrentStep, p.NextStep = models.StepBusinessInfo, models.StepSubscription
	case !p.HasCompleted(models.StepSubscription):
		p.CurrentStep, p.NextStep = models.StepSubscription, models.StepPayment
	case !p.PaymentCompleted:
		p.CurrentStep, p.NextStep = models.StepPayment, models.StepSetup
	default:
		p.CurrentStep, p.NextStep = models.StepSetup, models.StepComplete
	}
}

func markStep(p *models.OnboardingProgress, step models.OnboardingStep) {
	if p.HasCompleted(step) {
		return
	}
	p.CompletedSteps = append(p.CompletedSteps, string(step))
}

func unmarkStep(p *models.OnboardingProgress, step models.OnboardingStep) {
	kept := p.CompletedSteps[:0]
	for _, s := range p.CompletedSteps {
		if s != string(step) {
			kept = append(kept, s)
		}
	}
	p.CompletedSteps = kept
}

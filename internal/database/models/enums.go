package models

// UserRole defines the role of a user within their tenant
type UserRole string

const (
	UserRoleOwner   UserRole = "OWNER"
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleManager UserRole = "MANAGER"
	UserRoleStaff   UserRole = "STAFF"
)

// OnboardingStatus is the coarse state of a user's onboarding
type OnboardingStatus string

const (
	OnboardingStatusNotStarted OnboardingStatus = "not_started"
	OnboardingStatusInProgress OnboardingStatus = "in_progress"
	OnboardingStatusComplete   OnboardingStatus = "complete"
)

// OnboardingStep names a step of the onboarding flow
type OnboardingStep string

const (
	StepNotStarted   OnboardingStep = "not_started"
	StepBusinessInfo OnboardingStep = "business_info"
	StepSubscription OnboardingStep = "subscription"
	StepPayment      OnboardingStep = "payment"
	StepSetup        OnboardingStep = "setup"
	StepComplete     OnboardingStep = "complete"
)

// SubscriptionPlan defines the billable plans
type SubscriptionPlan string

const (
	PlanFree         SubscriptionPlan = "free"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

// BillingCycle defines how often a subscription is billed
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleManager, UserRoleStaff:
		return true
	}
	return false
}

// IsValid checks if the SubscriptionPlan is valid
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// RequiresPayment reports whether the plan goes through the payment step
func (p SubscriptionPlan) RequiresPayment() bool {
	return p.IsValid() && p != PlanFree
}

// IsValid checks if the BillingCycle is valid
func (c BillingCycle) IsValid() bool {
	switch c {
	case BillingMonthly, BillingAnnual:
		return true
	}
	return false
}

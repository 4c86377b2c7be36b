package models

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingProgress tracks a user's progression through onboarding.
// CompletedSteps is ordered and never holds duplicates.
type OnboardingProgress struct {
	BaseModel
	UserID           uuid.UUID        `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	TenantID         *uuid.UUID       `json:"tenant_id,omitempty" gorm:"type:uuid;index"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status" gorm:"type:varchar(20);not null;default:'not_started'"`
	CurrentStep      OnboardingStep   `json:"current_step" gorm:"type:varchar(30);not null;default:'business_info'"`
	NextStep         OnboardingStep   `json:"next_step" gorm:"type:varchar(30)"`
	CompletedSteps   []string         `json:"completed_steps" gorm:"serializer:json;type:jsonb"`
	SelectedPlan     SubscriptionPlan `json:"selected_plan" gorm:"type:varchar(20)"`
	SubscriptionPlan SubscriptionPlan `json:"subscription_plan" gorm:"type:varchar(20)"`
	BillingCycle     BillingCycle     `json:"billing_cycle" gorm:"type:varchar(20)"`
	PaymentCompleted bool             `json:"payment_completed" gorm:"not null;default:false"`
	SetupCompleted   bool             `json:"setup_completed" gorm:"not null;default:false"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

// TableName returns the table name for OnboardingProgress
func (OnboardingProgress) TableName() string {
	return "onboarding_progress"
}

// HasCompleted reports whether step is in CompletedSteps
func (p *OnboardingProgress) HasCompleted(step OnboardingStep) bool {
	for _, s := range p.CompletedSteps {
		if s == string(step) {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSession is a time-bounded login. SessionID is the opaque token handed to clients.
type UserSession struct {
	SessionID        uuid.UUID  `json:"session_id" gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	TenantID         *uuid.UUID `json:"tenant_id,omitempty" gorm:"type:uuid;index"`
	AccessToken      string     `json:"-" gorm:"type:text"`
	ExpiresAt        time.Time  `json:"expires_at" gorm:"not null;index"`
	IsActive         bool       `json:"is_active" gorm:"not null;index"`
	SubscriptionPlan string     `json:"subscription_plan" gorm:"size:20"`
	NeedsOnboarding  bool       `json:"needs_onboarding" gorm:"not null;default:false"`
	OnboardingStep   string     `json:"onboarding_step" gorm:"size:30"`
	IPAddress        string     `json:"ip_address" gorm:"size:64"`
	UserAgent        string     `json:"user_agent" gorm:"size:512"`
	LastActivity     time.Time  `json:"last_activity"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the table name for UserSession
func (UserSession) TableName() string {
	return "user_sessions"
}

// BeforeCreate sets the session id if not already set
func (s *UserSession) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	return nil
}

// IsExpired reports whether the session has expired at now
func (s *UserSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

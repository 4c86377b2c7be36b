package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizhub-backend/internal/cache"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/logger"
	"bizhub-backend/internal/metrics"
	"bizhub-backend/internal/onboarding"
	"bizhub-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	minExtensionHours = 1
	maxExtensionHours = 720
)

// SessionService issues, validates, refreshes and destroys user sessions
type SessionService struct {
	sessions repository.SessionRepositoryInterface
	users    repository.UserRepositoryInterface
	progress repository.OnboardingProgressRepositoryInterface
	cache    SessionCache
	ttl      time.Duration
	now      func() time.Time
}

// RequestMeta describes the client a session is issued to
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// CreateSessionOptions holds the optional parts of a new session
type CreateSessionOptions struct {
	TenantID    *uuid.UUID
	AccessToken string
	Meta        RequestMeta
	// TTL overrides the default lifetime when positive
	TTL time.Duration
}

// UpdateSessionRequest represents a PATCH of the current session
type UpdateSessionRequest struct {
	ExtendHours *int       `json:"extend_hours,omitempty" example:"24"`
	TenantID    *uuid.UUID `json:"tenant_id,omitempty"`
}

// NewSessionService creates a new session service. cache may be nil.
func NewSessionService(
	sessions repository.SessionRepositoryInterface,
	users repository.UserRepositoryInterface,
	progress repository.OnboardingProgressRepositoryInterface,
	cache SessionCache,
	ttl time.Duration,
) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		sessions: sessions,
		users:    users,
		progress: progress,
		cache:    cache,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for expiry decisions
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// CreateSession creates a session for user
func (s *SessionService) CreateSession(ctx context.Context, user *models.User, opts CreateSessionOptions) (*models.UserSession, error) {
	ttl := s.ttl
	if opts.TTL > 0 {
		ttl = opts.TTL
	}
	tenantID := opts.TenantID
	if tenantID == nil {
		tenantID = user.TenantID
	}

	now := s.now()
	session := &models.UserSession{
		SessionID:       uuid.New(),
		UserID:          user.ID,
		TenantID:        tenantID,
		AccessToken:     opts.AccessToken,
		ExpiresAt:       now.Add(ttl),
		IsActive:        true,
		NeedsOnboarding: onboarding.NeedsOnboarding(user),
		IPAddress:       opts.Meta.IPAddress,
		UserAgent:       opts.Meta.UserAgent,
		LastActivity:    now,
	}
	if progress, err := s.progress.GetByUserID(ctx, user.ID); err == nil {
		session.SubscriptionPlan = string(progress.SubscriptionPlan)
		session.OnboardingStep = string(progress.CurrentStep)
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load onboarding progress: %w", err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	metrics.SessionsCreatedTotal.Inc()
	s.cachePut(ctx, session)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"session_id": session.SessionID.String(),
		"expires_at": session.ExpiresAt,
	}).Info("Session created")
	return session, nil
}

// GetValidSession returns the session when it is active and unexpired. An expired
// session is deactivated as a side effect of the read.
func (s *SessionService) GetValidSession(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return nil, apperrors.ErrSessionInactive
	}
	if session.IsExpired(s.now()) {
		if err := s.sessions.Deactivate(ctx, sessionID); err != nil && !apperrors.IsNotFound(err) {
			logger.WithContext(ctx).WithError(err).Warn("Failed to deactivate expired session")
		}
		s.cacheDelete(ctx, sessionID)
		metrics.RecordSessionInvalidated("expired", 1)
		return nil, apperrors.ErrSessionExpired
	}
	return session, nil
}

// ExtendSession pushes the expiry of a valid session by hours
func (s *SessionService) ExtendSession(ctx context.Context, sessionID uuid.UUID, hours int) (*models.UserSession, error) {
	if hours < minExtensionHours || hours > maxExtensionHours {
		return nil, apperrors.ErrInvalidExtension
	}
	session, err := s.GetValidSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ExpiresAt = session.ExpiresAt.Add(time.Duration(hours) * time.Hour)
	session.LastActivity = s.now()
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to extend session: %w", err)
	}
	s.cachePut(ctx, session)
	return session, nil
}

// UpdateSession applies a PATCH to a valid session: extension and tenant switch.
// Only the user's own tenant can be selected.
func (s *SessionService) UpdateSession(ctx context.Context, sessionID uuid.UUID, req *UpdateSessionRequest) (*models.UserSession, error) {
	if req.ExtendHours != nil && (*req.ExtendHours < minExtensionHours || *req.ExtendHours > maxExtensionHours) {
		return nil, apperrors.ErrInvalidExtension
	}
	session, err := s.GetValidSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.TenantID != nil {
		user, err := s.users.GetByID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		if user.TenantID == nil || *user.TenantID != *req.TenantID {
			return nil, apperrors.ErrTenantMismatch
		}
		session.TenantID = req.TenantID
	}
	if req.ExtendHours != nil {
		session.ExpiresAt = session.ExpiresAt.Add(time.Duration(*req.ExtendHours) * time.Hour)
	}
	session.LastActivity = s.now()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	s.cachePut(ctx, session)
	return session, nil
}

// InvalidateSession deactivates a session
func (s *SessionService) InvalidateSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Deactivate(ctx, sessionID); err != nil {
		return err
	}
	s.cacheDelete(ctx, sessionID)
	metrics.RecordSessionInvalidated("logout", 1)
	return nil
}

// InvalidateUserSessions deactivates every active session of a user
func (s *SessionService) InvalidateUserSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	ids, err := s.sessions.ActiveSessionIDs(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	count, err := s.sessions.DeactivateByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate sessions: %w", err)
	}
	s.cacheDelete(ctx, ids...)
	metrics.RecordSessionInvalidated("logout_all", int(count))
	return count, nil
}

// SyncOnboarding copies the user's onboarding state onto their active sessions
func (s *SessionService) SyncOnboarding(ctx context.Context, user *models.User) error {
	updates := map[string]interface{}{
		"needs_onboarding": onboarding.NeedsOnboarding(user),
		"tenant_id":        user.TenantID,
	}
	progress, err := s.progress.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		updates["subscription_plan"] = string(progress.SubscriptionPlan)
		updates["onboarding_step"] = string(progress.CurrentStep)
	case !apperrors.IsNotFound(err):
		return fmt.Errorf("failed to load onboarding progress: %w", err)
	}

	ids, err := s.sessions.ActiveSessionIDs(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if err := s.sessions.UpdateByUser(ctx, user.ID, updates); err != nil {
		return fmt.Errorf("failed to update sessions: %w", err)
	}
	s.cacheDelete(ctx, ids...)
	return nil
}

// PurgeExpired deletes sessions that expired before the given time
func (s *SessionService) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	metrics.RecordSessionInvalidated("purged", int(count))
	return count, nil
}

// load reads a session through the cache
func (s *SessionService) load(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error) {
	if s.cache != nil {
		session, err := s.cache.Get(ctx, sessionID)
		switch {
		case err == nil:
			metrics.SessionCacheTotal.WithLabelValues("hit").Inc()
			return session, nil
		case errors.Is(err, cache.ErrCacheMiss):
			metrics.SessionCacheTotal.WithLabelValues("miss").Inc()
		default:
			metrics.SessionCacheTotal.WithLabelValues("error").Inc()
			logger.WithContext(ctx).WithError(err).Warn("Session cache unavailable, reading from database")
		}
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsActive {
		s.cachePut(ctx, session)
	}
	return session, nil
}

func (s *SessionService) cachePut(ctx context.Context, session *models.UserSession) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, session); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to cache session")
	}
}

func (s *SessionService) cacheDelete(ctx context.Context, sessionIDs ...uuid.UUID) {
	if s.cache == nil || len(sessionIDs) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, sessionIDs...); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to evict sessions from cache")
	}
}

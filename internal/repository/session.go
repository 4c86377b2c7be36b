package repository

import (
	"context"
	"time"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for user sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.UserSession) error {
	return conn(ctx, r.db).Create(session).Error
}

// GetByID retrieves a session by its token
func (r *SessionRepository) GetByID(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error) {
	var session models.UserSession
	if err := conn(ctx, r.db).First(&session, "session_id = ?", sessionID).Error; err != nil {
		return nil, translate(err, apperrors.ErrSessionNotFound, nil)
	}
	return &session, nil
}

// Update updates a session
func (r *SessionRepository) Update(ctx context.Context, session *models.UserSession) error {
	return conn(ctx, r.db).Save(session).Error
}

// Deactivate marks a session inactive
func (r *SessionRepository) Deactivate(ctx context.Context, sessionID uuid.UUID) error {
	result := conn(ctx, r.db).Model(&models.UserSession{}).
		Where("session_id = ?", sessionID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// ActiveSessionIDs returns the ids of a user's active sessions
func (r *SessionRepository) ActiveSessionIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := conn(ctx, r.db).Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Pluck("session_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeactivateByUser marks all sessions of a user inactive
func (r *SessionRepository) DeactivateByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := conn(ctx, r.db).Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// UpdateByUser applies column updates to all active sessions of a user
func (r *SessionRepository) UpdateByUser(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	return conn(ctx, r.db).Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(updates).Error
}

// DeleteExpired removes sessions that expired before the given time
func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := conn(ctx, r.db).Where("expires_at < ?", before).Delete(&models.UserSession{})
	return result.RowsAffected, result.Error
}

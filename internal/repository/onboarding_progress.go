package repository

import (
	"context"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingProgressRepository handles database operations for onboarding progress
type OnboardingProgressRepository struct {
	db *gorm.DB
}

// NewOnboardingProgressRepository creates a new onboarding progress repository
func NewOnboardingProgressRepository(db *gorm.DB) *OnboardingProgressRepository {
	return &OnboardingProgressRepository{db: db}
}

// Create creates the progress row of a user; one per user
func (r *OnboardingProgressRepository) Create(ctx context.Context, progress *models.OnboardingProgress) error {
	return createIfAbsent(conn(ctx, r.db), progress, apperrors.ErrOnboardingProgressExists)
}

// GetByUserID retrieves the progress of a user
func (r *OnboardingProgressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.OnboardingProgress, error) {
	var progress models.OnboardingProgress
	if err := conn(ctx, r.db).First(&progress, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err, apperrors.ErrOnboardingProgressNotFound, nil)
	}
	return &progress, nil
}

// Update updates the progress
func (r *OnboardingProgressRepository) Update(ctx context.Context, progress *models.OnboardingProgress) error {
	return translate(conn(ctx, r.db).Save(progress).Error, nil, apperrors.ErrOnboardingProgressExists)
}

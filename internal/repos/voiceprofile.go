package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/types"
)

type VoiceProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profile *types.VoiceProfile) (*types.VoiceProfile, error)
	GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.VoiceProfile, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.VoiceProfile, error)
}

type voiceProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVoiceProfileRepo(db *gorm.DB, baseLog *logger.Logger) VoiceProfileRepo {
	return &voiceProfileRepo{db: db, log: baseLog.With("repo", "VoiceProfileRepo")}
}

func (vr *voiceProfileRepo) Create(ctx context.Context, tx *gorm.DB, profile *types.VoiceProfile) (*types.VoiceProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (vr *voiceProfileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.VoiceProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var result types.VoiceProfile
	if err := transaction.WithContext(ctx).
		Where("id = ?", profileID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (vr *voiceProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.VoiceProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*types.VoiceProfile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

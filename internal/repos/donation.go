package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/types"
)

type DonationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, donation *types.Donation) (*types.Donation, error)
	GetByID(ctx context.Context, tx *gorm.DB, donationID uuid.UUID) (*types.Donation, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Donation, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, donationID uuid.UUID, status types.DonationStatus, distributedAt *time.Time) error
}

type donationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDonationRepo(db *gorm.DB, baseLog *logger.Logger) DonationRepo {
	return &donationRepo{db: db, log: baseLog.With("repo", "DonationRepo")}
}

func (dr *donationRepo) Create(ctx context.Context, tx *gorm.DB, donation *types.Donation) (*types.Donation, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if err := transaction.WithContext(ctx).Create(donation).Error; err != nil {
		return nil, err
	}
	return donation, nil
}

func (dr *donationRepo) GetByID(ctx context.Context, tx *gorm.DB, donationID uuid.UUID) (*types.Donation, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var result types.Donation
	if err := transaction.WithContext(ctx).
		Where("id = ?", donationID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *donationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Donation, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var results []*types.Donation
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *donationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, donationID uuid.UUID, status types.DonationStatus, distributedAt *time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	updates := map[string]any{"status": status}
	if distributedAt != nil {
		updates["distributed_at"] = distributedAt
	}
	return transaction.WithContext(ctx).
		Model(&types.Donation{}).
		Where("id = ?", donationID).
		Updates(updates).Error
}

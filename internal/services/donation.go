package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/repos"
	"github.com/storysprout/storysprout-backend/internal/types"
)

type CreateDonationInput struct {
	DonorName   string             `json:"donorName" binding:"required"`
	DonorEmail  string             `json:"donorEmail" binding:"required"`
	ItemType    types.DonationKind `json:"itemType" binding:"required"`
	Description string             `json:"description"`
	Quantity    *int               `json:"quantity,omitempty"`
	Amount      *float64           `json:"amount,omitempty"`
}

type DonationService interface {
	Create(ctx context.Context, input CreateDonationInput) (*types.Donation, error)
	List(ctx context.Context) ([]*types.Donation, error)
	Advance(ctx context.Context, donationID uuid.UUID, next types.DonationStatus) (*types.Donation, error)
}

type donationService struct {
	log          *logger.Logger
	donationRepo repos.DonationRepo
}

func NewDonationService(log *logger.Logger, donationRepo repos.DonationRepo) DonationService {
	return &donationService{
		log:          log.With("service", "DonationService"),
		donationRepo: donationRepo,
	}
}

func (ds *donationService) Create(ctx context.Context, input CreateDonationInput) (*types.Donation, error) {
	if !types.ValidDonationKind(input.ItemType) {
		return nil, fmt.Errorf("invalid itemType %q", input.ItemType)
	}
	if strings.TrimSpace(input.DonorName) == "" || strings.TrimSpace(input.DonorEmail) == "" {
		return nil, fmt.Errorf("donorName and donorEmail required")
	}

	donation := &types.Donation{
		ID:          uuid.New(),
		DonorName:   strings.TrimSpace(input.DonorName),
		DonorEmail:  strings.TrimSpace(input.DonorEmail),
		ItemType:    input.ItemType,
		Description: input.Description,
		Status:      types.DonationPending,
		CreatedAt:   time.Now().UTC(),
	}

	if input.ItemType == types.DonationMonetary {
		if input.Quantity != nil {
			return nil, fmt.Errorf("monetary donations cannot carry a quantity")
		}
		amount := 0.0
		if input.Amount != nil {
			if *input.Amount < 0 {
				return nil, fmt.Errorf("amount cannot be negative")
			}
			amount = *input.Amount
		}
		donation.Amount = &amount
	} else {
		if input.Amount != nil {
			return nil, fmt.Errorf("%s donations cannot carry an amount", input.ItemType)
		}
		if input.Quantity != nil {
			if *input.Quantity <= 0 {
				return nil, fmt.Errorf("quantity must be positive")
			}
			donation.Quantity = input.Quantity
		}
	}

	created, err := ds.donationRepo.Create(ctx, nil, donation)
	if err != nil {
		ds.log.Warn("Failed to create donation", "error", err)
		return nil, err
	}
	return created, nil
}

func (ds *donationService) List(ctx context.Context) ([]*types.Donation, error) {
	return ds.donationRepo.List(ctx, nil)
}

// Advance moves a donation one step along pending -> approved -> distributed.
// Backward or skipping transitions are rejected.
func (ds *donationService) Advance(ctx context.Context, donationID uuid.UUID, next types.DonationStatus) (*types.Donation, error) {
	donation, err := ds.donationRepo.GetByID(ctx, nil, donationID)
	if err != nil {
		return nil, err
	}
	expected, ok := types.NextDonationStatus(donation.Status)
	if !ok {
		return nil, fmt.Errorf("donation already %s", donation.Status)
	}
	if next != expected {
		return nil, fmt.Errorf("cannot move donation from %s to %s", donation.Status, next)
	}

	var distributedAt *time.Time
	if next == types.DonationDistributed {
		now := time.Now().UTC()
		distributedAt = &now
	}
	if err := ds.donationRepo.UpdateStatus(ctx, nil, donationID, next, distributedAt); err != nil {
		return nil, err
	}
	donation.Status = next
	donation.DistributedAt = distributedAt
	return donation, nil
}

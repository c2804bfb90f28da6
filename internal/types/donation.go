package types

import (
	"time"

	"github.com/google/uuid"
)

type DonationKind string

const (
	DonationBook                DonationKind = "book"
	DonationEducationalMaterial DonationKind = "educational-material"
	DonationMonetary            DonationKind = "monetary"
)

func ValidDonationKind(k DonationKind) bool {
	switch k {
	case DonationBook, DonationEducationalMaterial, DonationMonetary:
		return true
	default:
		return false
	}
}

type DonationStatus string

const (
	DonationPending     DonationStatus = "pending"
	DonationApproved    DonationStatus = "approved"
	DonationDistributed DonationStatus = "distributed"
)

// NextDonationStatus returns the only legal successor of a status; the
// lifecycle is one-directional.
func NextDonationStatus(s DonationStatus) (DonationStatus, bool) {
	switch s {
	case DonationPending:
		return DonationApproved, true
	case DonationApproved:
		return DonationDistributed, true
	default:
		return "", false
	}
}

// Quantity applies to physical donations, Amount to monetary ones; the two
// are mutually exclusive.
type Donation struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DonorName     string         `gorm:"not null;column:donor_name" json:"donorName"`
	DonorEmail    string         `gorm:"not null;column:donor_email" json:"donorEmail"`
	ItemType      DonationKind   `gorm:"not null;column:item_type" json:"itemType"`
	Description   string         `gorm:"column:description" json:"description"`
	Quantity      *int           `gorm:"column:quantity" json:"quantity,omitempty"`
	Amount        *float64       `gorm:"column:amount" json:"amount,omitempty"`
	Status        DonationStatus `gorm:"not null;default:pending;column:status" json:"status"`
	CreatedAt     time.Time      `gorm:"not null;column:created_at" json:"createdAt"`
	DistributedAt *time.Time     `gorm:"column:distributed_at" json:"distributedAt,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

package repository

import (
	"context"
	"donorlink-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	CreateNGODetails(ctx context.Context, details *domain.NGODetails) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetNGODetails(ctx context.Context, ngoID string) (*domain.NGODetails, error)
	List(ctx context.Context, userType, status string) ([]domain.User, error)
	ListNGOs(ctx context.Context, category, status string) ([]domain.User, error)
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error
}

type DonationRepository interface {
	// Create inserts the donation row and its image rows in one transaction.
	Create(ctx context.Context, d *domain.Donation, images []string) error
	GetByID(ctx context.Context, id int32) (*domain.Donation, error)
	// GetWithClaim returns the donation joined with the claim held by ngoID.
	GetWithClaim(ctx context.Context, donationID int32, ngoID string) (*domain.Donation, error)
	List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error)
	// UpdateStatusGuard flips status only when the current status matches
	// from, and reports how many rows were touched.
	UpdateStatusGuard(ctx context.Context, id int32, from, to domain.DonationStatus) (int64, error)
	// Delete removes the donation and its image rows in one transaction.
	Delete(ctx context.Context, id int32) error
}

type ClaimRepository interface {
	// Claim atomically flips the donation from pending to claimed and
	// inserts the claim row. Returns domain.ErrUnavailable when the
	// conditional update touches no row.
	Claim(ctx context.Context, donationID int32, ngoID string, deliveryCharge int32) (*domain.Claim, error)
	GetByID(ctx context.Context, id int32) (*domain.Claim, error)
	// Advance moves the claim and its donation to the next lifecycle state
	// in one transaction, guarded on the current claim status.
	Advance(ctx context.Context, claim *domain.Claim, next domain.ClaimStatus) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	GetByID(ctx context.Context, id int32) (*domain.Feedback, error)
	List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error)
}

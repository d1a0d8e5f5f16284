package service

import (
	"context"
	"fmt"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/logger"
	"donorlink-backend/internal/repository"
	"donorlink-backend/internal/security"
)

const maxDonationImages = 5

type donationService struct {
	donationRepo repository.DonationRepository
	claimRepo    repository.ClaimRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
}

func NewDonationService(
	donationRepo repository.DonationRepository,
	claimRepo repository.ClaimRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		claimRepo:    claimRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
	}
}

func (s *donationService) Create(ctx context.Context, principal *domain.User, in CreateDonationInput) (int32, error) {
	if !security.Can(principal, security.ActionCreateDonation) {
		return 0, fmt.Errorf("only donors can create donations: %w", domain.ErrForbidden)
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.Conditions == "" {
		missing = append(missing, "conditions")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.DeliveryOption == "" {
		missing = append(missing, "delivery_option")
	}
	if in.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return 0, domain.NewValidationError(missing...)
	}
	if len(in.Images) > maxDonationImages {
		return 0, domain.NewValidationError("images")
	}

	d := &domain.Donation{
		Name:           in.Name,
		Category:       in.Category,
		Conditions:     in.Conditions,
		Description:    in.Description,
		DonorID:        principal.ID,
		DeliveryOption: in.DeliveryOption,
		Location:       in.Location,
		Status:         domain.DonationStatusPending,
	}

	if err := s.donationRepo.Create(ctx, d, in.Images); err != nil {
		return 0, fmt.Errorf("failed to save donation: %v: %w", err, domain.ErrStorage)
	}
	return d.ID, nil
}

func (s *donationService) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	return s.donationRepo.List(ctx, filter)
}

func (s *donationService) Get(ctx context.Context, id int32) (*domain.Donation, error) {
	return s.donationRepo.GetByID(ctx, id)
}

func (s *donationService) UpdateStatus(ctx context.Context, principal *domain.User, id int32, next domain.DonationStatus) error {
	d, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Removal is an admin action; everything else belongs to the owner.
	if next == domain.DonationStatusRemoved {
		if !security.Can(principal, security.ActionModerateUsers) {
			return fmt.Errorf("only admins can remove donations: %w", domain.ErrForbidden)
		}
	} else if !security.Owns(principal, d.DonorID) {
		return fmt.Errorf("donation belongs to another donor: %w", domain.ErrForbidden)
	}

	// Claiming is only reachable through the claim workflow.
	if next == domain.DonationStatusClaimed {
		return fmt.Errorf("claims must go through the claim endpoint: %w", domain.ErrForbidden)
	}

	if !d.Status.CanTransitionTo(next) {
		return fmt.Errorf("cannot move donation from %s to %s: %w", d.Status, next, domain.ErrConflict)
	}

	affected, err := s.donationRepo.UpdateStatusGuard(ctx, id, d.Status, next)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("donation %d no longer in status %s: %w", id, d.Status, domain.ErrConflict)
	}
	return nil
}

func (s *donationService) Delete(ctx context.Context, principal *domain.User, id int32) error {
	d, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !security.Owns(principal, d.DonorID) {
		return fmt.Errorf("donation belongs to another donor: %w", domain.ErrForbidden)
	}
	return s.donationRepo.Delete(ctx, id)
}

// Claim transitions a pending donation to claimed for the calling NGO. The
// repository performs the flip and the claim insert atomically; a losing
// concurrent claimant comes back with domain.ErrUnavailable.
func (s *donationService) Claim(ctx context.Context, principal *domain.User, donationID, deliveryCharge int32) (*domain.Donation, error) {
	if !security.Can(principal, security.ActionClaimDonation) {
		return nil, fmt.Errorf("only NGOs can claim donations: %w", domain.ErrForbidden)
	}
	if deliveryCharge < 0 {
		return nil, domain.NewValidationError("deliveryCharge")
	}

	if _, err := s.claimRepo.Claim(ctx, donationID, principal.ID, deliveryCharge); err != nil {
		return nil, err
	}

	view, err := s.donationRepo.GetWithClaim(ctx, donationID, principal.ID)
	if err != nil {
		return nil, err
	}

	if donor, err := s.userRepo.GetByID(ctx, view.DonorID); err == nil {
		if err := s.emailSvc.SendClaimNotification(ctx, donor.Email, donor.Name, principal.Name, view.Name); err != nil {
			logger.Warn("Failed to send claim notification", "donation_id", view.ID, "error", err)
		}
	}

	return view, nil
}

func (s *donationService) AdvanceClaim(ctx context.Context, principal *domain.User, claimID int32, next domain.ClaimStatus) (*domain.Claim, error) {
	if !security.Can(principal, security.ActionClaimDonation) {
		return nil, fmt.Errorf("only NGOs can update claims: %w", domain.ErrForbidden)
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.NGOID != principal.ID {
		return nil, fmt.Errorf("claim belongs to another NGO: %w", domain.ErrForbidden)
	}
	if !claim.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move claim from %s to %s: %w", claim.Status, next, domain.ErrConflict)
	}

	if err := s.claimRepo.Advance(ctx, claim, next); err != nil {
		return nil, err
	}
	return claim, nil
}

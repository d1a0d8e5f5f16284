package service

import (
	"context"
	"fmt"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/logger"
	"donorlink-backend/internal/repository"
	"donorlink-backend/internal/security"
)

type userService struct {
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewUserService(userRepo repository.UserRepository, emailSvc EmailService) UserService {
	return &userService{
		userRepo: userRepo,
		emailSvc: emailSvc,
	}
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Type == domain.UserTypeNGO {
		if details, err := s.userRepo.GetNGODetails(ctx, id); err == nil {
			user.NGODetails = details
		}
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, principal *domain.User, userType, status string) ([]domain.User, error) {
	if !security.Can(principal, security.ActionListUsers) {
		return nil, fmt.Errorf("only admins can list users: %w", domain.ErrForbidden)
	}
	return s.userRepo.List(ctx, userType, status)
}

// SetStatus is the admin moderation path: activating pending NGOs and
// deactivating accounts. The affected user is notified by email.
func (s *userService) SetStatus(ctx context.Context, principal *domain.User, id string, status domain.UserStatus) (*domain.User, error) {
	if !security.Can(principal, security.ActionModerateUsers) {
		return nil, fmt.Errorf("only admins can change account status: %w", domain.ErrForbidden)
	}

	switch status {
	case domain.UserStatusPending, domain.UserStatusActive, domain.UserStatusInactive:
	default:
		return nil, domain.NewValidationError("status")
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendAccountStatusNotification(ctx, user.Email, user.Name, status); err != nil {
		logger.Warn("Failed to send account status notification", "user_id", user.ID, "error", err)
	}

	return user, nil
}

func (s *userService) ListNGOs(ctx context.Context, category, status string) ([]domain.User, error) {
	return s.userRepo.ListNGOs(ctx, category, status)
}

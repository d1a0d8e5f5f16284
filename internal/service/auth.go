package service

import (
	"context"
	"errors"
	"fmt"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"
	"donorlink-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotActive   = errors.New("account is not active")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if in.Type != domain.UserTypeDonor && in.Type != domain.UserTypeNGO {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return "", domain.NewValidationError(missing...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	// NGOs wait for admin activation before they can log in.
	status := domain.UserStatusActive
	if in.Type == domain.UserTypeNGO {
		status = domain.UserStatusPending
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Address:      in.Address,
		Type:         in.Type,
		Status:       status,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return "", fmt.Errorf("user with this email already exists: %w", domain.ErrConflict)
		}
		return "", err
	}

	if in.Type == domain.UserTypeNGO && in.RegistrationNumber != "" {
		details := &domain.NGODetails{
			NGOID:              user.ID,
			RegistrationNumber: in.RegistrationNumber,
			Description:        in.Description,
			Category:           in.Category,
		}
		if err := s.userRepo.CreateNGODetails(ctx, details); err != nil {
			return "", err
		}
	}

	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, email, password string, userType domain.UserType) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Type != userType {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.Status != domain.UserStatusActive {
		return "", nil, ErrAccountNotActive
	}

	if user.Type == domain.UserTypeNGO {
		if details, err := s.userRepo.GetNGODetails(ctx, user.ID); err == nil {
			user.NGODetails = details
		}
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

// ResolvePrincipal is a pure lookup: it never checks roles, only that the
// token is valid and still points at an existing user.
func (s *authService) ResolvePrincipal(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

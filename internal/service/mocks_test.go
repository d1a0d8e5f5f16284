package service_test

import (
	"context"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) CreateNGODetails(ctx context.Context, details *domain.NGODetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetNGODetails(ctx context.Context, ngoID string) (*domain.NGODetails, error) {
	args := m.Called(ctx, ngoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NGODetails), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, userType, status string) ([]domain.User, error) {
	args := m.Called(ctx, userType, status)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListNGOs(ctx context.Context, category, status string) ([]domain.User, error) {
	args := m.Called(ctx, category, status)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockDonationRepo
type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) Create(ctx context.Context, d *domain.Donation, images []string) error {
	args := m.Called(ctx, d, images)
	return args.Error(0)
}
func (m *MockDonationRepo) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) GetWithClaim(ctx context.Context, donationID int32, ngoID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID, ngoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) UpdateStatusGuard(ctx context.Context, id int32, from, to domain.DonationStatus) (int64, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockDonationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClaimRepo
type MockClaimRepo struct {
	mock.Mock
}

func (m *MockClaimRepo) Claim(ctx context.Context, donationID int32, ngoID string, deliveryCharge int32) (*domain.Claim, error) {
	args := m.Called(ctx, donationID, ngoID, deliveryCharge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockClaimRepo) GetByID(ctx context.Context, id int32) (*domain.Claim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockClaimRepo) Advance(ctx context.Context, claim *domain.Claim, next domain.ClaimStatus) error {
	args := m.Called(ctx, claim, next)
	if args.Error(0) == nil {
		claim.Status = next
	}
	return args.Error(0)
}

// MockFeedbackRepo
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFeedbackRepo) GetByID(ctx context.Context, id int32) (*domain.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAccountStatusNotification(ctx context.Context, email, name string, status domain.UserStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}
func (m *MockEmailService) SendClaimNotification(ctx context.Context, donorEmail, donorName, ngoName, donationName string) error {
	args := m.Called(ctx, donorEmail, donorName, ngoName, donationName)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

func activeDonor() *domain.User {
	return &domain.User{ID: "donor-1", Name: "Asif", Email: "asif@example.com", Type: domain.UserTypeDonor, Status: domain.UserStatusActive}
}

func activeNGO() *domain.User {
	return &domain.User{ID: "ngo-1", Name: "Hope Trust", Email: "hope@example.com", Type: domain.UserTypeNGO, Status: domain.UserStatusActive}
}

func pendingNGO() *domain.User {
	return &domain.User{ID: "ngo-2", Name: "Care Org", Email: "care@example.com", Type: domain.UserTypeNGO, Status: domain.UserStatusPending}
}

func activeAdmin() *domain.User {
	return &domain.User{ID: "admin-1", Name: "Root", Email: "admin@example.com", Type: domain.UserTypeAdmin, Status: domain.UserStatusActive}
}

package service

import (
	"context"

	"donorlink-backend/internal/domain"
)

// RegisterInput carries everything a registration form submits. The NGO
// fields are only consulted when Type is "ngo".
type RegisterInput struct {
	Name               string
	Email              string
	Password           string
	Type               domain.UserType
	Phone              string
	Address            string
	RegistrationNumber string
	Description        string
	Category           string
}

type CreateDonationInput struct {
	Name           string
	Category       string
	Conditions     string
	Description    string
	DeliveryOption string
	Location       string
	Images         []string
}

type FeedbackInput struct {
	DonationID int32
	ToID       string
	Rating     int32
	Comment    string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, email, password string, userType domain.UserType) (string, *domain.User, error)
	// ResolvePrincipal turns a bearer token into the user it belongs to.
	ResolvePrincipal(ctx context.Context, token string) (*domain.User, error)
}

type DonationService interface {
	Create(ctx context.Context, principal *domain.User, in CreateDonationInput) (int32, error)
	List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error)
	Get(ctx context.Context, id int32) (*domain.Donation, error)
	UpdateStatus(ctx context.Context, principal *domain.User, id int32, next domain.DonationStatus) error
	Delete(ctx context.Context, principal *domain.User, id int32) error
	Claim(ctx context.Context, principal *domain.User, donationID, deliveryCharge int32) (*domain.Donation, error)
	AdvanceClaim(ctx context.Context, principal *domain.User, claimID int32, next domain.ClaimStatus) (*domain.Claim, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, principal *domain.User, in FeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, principal *domain.User, userType, status string) ([]domain.User, error)
	SetStatus(ctx context.Context, principal *domain.User, id string, status domain.UserStatus) (*domain.User, error)
	ListNGOs(ctx context.Context, category, status string) ([]domain.User, error)
}

type EmailService interface {
	SendAccountStatusNotification(ctx context.Context, email, name string, status domain.UserStatus) error
	SendClaimNotification(ctx context.Context, donorEmail, donorName, ngoName, donationName string) error
}

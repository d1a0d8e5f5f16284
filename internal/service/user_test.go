package service_test

import (
	"context"
	"testing"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("NGOGetsDetails", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		details := &domain.NGODetails{NGOID: "ngo-1", RegistrationNumber: "REG-42"}
		userRepo.On("GetByID", ctx, "ngo-1").Return(activeNGO(), nil)
		userRepo.On("GetNGODetails", ctx, "ngo-1").Return(details, nil)

		got, err := svc.GetUser(ctx, "ngo-1")
		assert.NoError(t, err)
		assert.Equal(t, details, got.NGODetails)
	})

	t.Run("DonorSkipsDetailsLookup", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		userRepo.On("GetByID", ctx, "donor-1").Return(activeDonor(), nil)

		got, err := svc.GetUser(ctx, "donor-1")
		assert.NoError(t, err)
		assert.Nil(t, got.NGODetails)
		userRepo.AssertNotCalled(t, "GetNGODetails")
	})
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminOnly", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		_, err := svc.ListUsers(ctx, activeDonor(), "", "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "List")
	})

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		userRepo.On("List", ctx, "ngo", "pending").Return([]domain.User{*pendingNGO()}, nil)

		users, err := svc.ListUsers(ctx, activeAdmin(), "ngo", "pending")
		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminActivatesNGO", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		activated := activeNGO()
		userRepo.On("UpdateStatus", ctx, "ngo-1", domain.UserStatusActive).Return(nil)
		userRepo.On("GetByID", ctx, "ngo-1").Return(activated, nil)
		emailSvc.On("SendAccountStatusNotification", ctx, "hope@example.com", "Hope Trust", domain.UserStatusActive).Return(nil)

		got, err := svc.SetStatus(ctx, activeAdmin(), "ngo-1", domain.UserStatusActive)
		assert.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, got.Status)
		emailSvc.AssertExpectations(t)
	})

	t.Run("EmailFailureDoesNotFailUpdate", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		userRepo.On("UpdateStatus", ctx, "ngo-1", domain.UserStatusActive).Return(nil)
		userRepo.On("GetByID", ctx, "ngo-1").Return(activeNGO(), nil)
		emailSvc.On("SendAccountStatusNotification", ctx, "hope@example.com", "Hope Trust", domain.UserStatusActive).
			Return(assert.AnError)

		got, err := svc.SetStatus(ctx, activeAdmin(), "ngo-1", domain.UserStatusActive)
		assert.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, got.Status)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		_, err := svc.SetStatus(ctx, activeNGO(), "donor-1", domain.UserStatusInactive)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		_, err := svc.SetStatus(ctx, activeAdmin(), "ngo-1", domain.UserStatus("banned"))
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewUserService(userRepo, emailSvc)

		userRepo.On("UpdateStatus", ctx, "missing", domain.UserStatusActive).Return(domain.ErrNotFound)

		_, err := svc.SetStatus(ctx, activeAdmin(), "missing", domain.UserStatusActive)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		emailSvc.AssertNotCalled(t, "SendAccountStatusNotification")
	})
}

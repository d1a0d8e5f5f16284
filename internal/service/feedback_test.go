package service_test

import (
	"context"
	"testing"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		svc := service.NewFeedbackService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(f *domain.Feedback) bool {
			return f.FromID == "ngo-1" && f.ToID == "donor-1" && f.Rating == 5
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Feedback).ID = 4
		}).Return(nil)
		repo.On("GetByID", ctx, int32(4)).Return(&domain.Feedback{
			ID: 4, DonationID: 12, FromID: "ngo-1", ToID: "donor-1", Rating: 5,
			FromName: "Hope Trust", ToName: "Asif", DonationName: "Winter Jackets",
		}, nil)

		got, err := svc.Submit(ctx, activeNGO(), service.FeedbackInput{
			DonationID: 12,
			ToID:       "donor-1",
			Rating:     5,
			Comment:    "Great condition",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Hope Trust", got.FromName)
		assert.Equal(t, "Winter Jackets", got.DonationName)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		svc := service.NewFeedbackService(repo)

		for _, rating := range []int32{0, 6} {
			_, err := svc.Submit(ctx, activeNGO(), service.FeedbackInput{
				DonationID: 12,
				ToID:       "donor-1",
				Rating:     rating,
			})
			var vErr *domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, "rating")
		}
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("MissingTarget", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		svc := service.NewFeedbackService(repo)

		_, err := svc.Submit(ctx, activeNGO(), service.FeedbackInput{Rating: 4})
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "donationId")
		assert.Contains(t, vErr.Fields, "toId")
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		svc := service.NewFeedbackService(repo)

		repo.On("Create", ctx, mock.Anything).Return(domain.ErrConflict)

		_, err := svc.Submit(ctx, activeNGO(), service.FeedbackInput{
			DonationID: 12,
			ToID:       "donor-1",
			Rating:     5,
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
		repo.AssertNotCalled(t, "GetByID")
	})
}

func TestFeedbackService_List(t *testing.T) {
	ctx := context.Background()

	repo := new(MockFeedbackRepo)
	svc := service.NewFeedbackService(repo)

	filter := domain.FeedbackFilter{DonationID: 12}
	repo.On("List", ctx, filter).Return([]domain.Feedback{{ID: 4}}, nil)

	feedback, err := svc.List(ctx, filter)
	assert.NoError(t, err)
	assert.Len(t, feedback, 1)
}

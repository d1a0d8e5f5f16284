package service

import (
	"context"
	"errors"
	"fmt"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) Submit(ctx context.Context, principal *domain.User, in FeedbackInput) (*domain.Feedback, error) {
	var missing []string
	if in.DonationID == 0 {
		missing = append(missing, "donationId")
	}
	if in.ToID == "" {
		missing = append(missing, "toId")
	}
	if in.Rating < 1 || in.Rating > 5 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	f := &domain.Feedback{
		DonationID: in.DonationID,
		FromID:     principal.ID,
		ToID:       in.ToID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	if err := s.feedbackRepo.Create(ctx, f); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("feedback already submitted: %w", domain.ErrConflict)
		}
		return nil, err
	}

	return s.feedbackRepo.GetByID(ctx, f.ID)
}

func (s *feedbackService) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	return s.feedbackRepo.List(ctx, filter)
}

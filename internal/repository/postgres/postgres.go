package postgres

import (
	"database/sql"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.DonationRepository
	repository.ClaimRepository
	repository.FeedbackRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		DonationRepository: NewDonationRepository(db),
		ClaimRepository:    NewClaimRepository(db),
		FeedbackRepository: NewFeedbackRepository(db),
	}
}

// translateError maps driver-level failures onto the domain taxonomy so the
// service layer never has to know about pq error codes.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}

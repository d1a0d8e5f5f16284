package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"
)

type claimRepository struct {
	db *sql.DB
}

func NewClaimRepository(db *sql.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

// Claim flips the donation status and inserts the claim row in one
// transaction. The conditional UPDATE is what makes two concurrent claims
// safe: only the first one finds the row still pending, the second sees
// zero affected rows and rolls back without inserting anything.
func (r *claimRepository) Claim(ctx context.Context, donationID int32, ngoID string, deliveryCharge int32) (*domain.Claim, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE donations SET status = $1 WHERE id = $2 AND status = $3`,
		domain.DonationStatusClaimed, donationID, domain.DonationStatusPending)
	if err != nil {
		return nil, translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, translateError(err)
	}
	if rows == 0 {
		return nil, domain.ErrUnavailable
	}

	c := &domain.Claim{
		DonationID:     donationID,
		NGOID:          ngoID,
		Status:         domain.ClaimStatusProcessing,
		DeliveryCharge: deliveryCharge,
	}
	now := time.Now()
	c.ClaimedAt = now.Format(time.RFC3339)
	err = tx.QueryRowContext(ctx,
		`INSERT INTO donation_claims (donation_id, ngo_id, status, delivery_charge, claimed_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.DonationID, c.NGOID, c.Status, c.DeliveryCharge, now).Scan(&c.ID)
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

func (r *claimRepository) GetByID(ctx context.Context, id int32) (*domain.Claim, error) {
	c := &domain.Claim{}
	query := `SELECT id, donation_id, ngo_id, status, delivery_charge, claimed_at FROM donation_claims WHERE id = $1`
	var claimedAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.DonationID, &c.NGOID, &c.Status, &c.DeliveryCharge, &claimedAt)
	if err != nil {
		return nil, translateError(err)
	}
	c.ClaimedAt = claimedAt.Format(time.RFC3339)
	return c, nil
}

func (r *claimRepository) Advance(ctx context.Context, claim *domain.Claim, next domain.ClaimStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE donation_claims SET status = $1 WHERE id = $2 AND status = $3`,
		next, claim.ID, claim.Status)
	if err != nil {
		return translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if rows == 0 {
		return fmt.Errorf("claim %d no longer in status %s: %w", claim.ID, claim.Status, domain.ErrConflict)
	}

	// The donation row advances in lockstep, guarded on the status the
	// current claim state implies. Zero rows means the donation drifted
	// from its claim and the whole transaction rolls back.
	result, err = tx.ExecContext(ctx,
		`UPDATE donations SET status = $1 WHERE id = $2 AND status = $3`,
		next.DonationStatus(), claim.DonationID, claim.Status.DonationStatus())
	if err != nil {
		return translateError(err)
	}
	rows, err = result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if rows == 0 {
		return fmt.Errorf("donation %d out of step with claim %d: %w", claim.DonationID, claim.ID, domain.ErrConflict)
	}

	if err := tx.Commit(); err != nil {
		return translateError(err)
	}
	claim.Status = next
	return nil
}

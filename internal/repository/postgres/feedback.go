package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

const feedbackColumns = `f.id, f.donation_id, f.from_id, f.to_id, f.rating, COALESCE(f.comment, ''), f.created_at,
	from_user.name, from_user.type, to_user.name, to_user.type, d.name`

const feedbackJoins = `FROM feedback f
	JOIN users from_user ON f.from_id = from_user.id
	JOIN users to_user ON f.to_id = to_user.id
	JOIN donations d ON f.donation_id = d.id`

// Create relies on the unique (donation_id, from_id, to_id) index; a second
// submission for the same triple comes back as domain.ErrConflict.
func (r *feedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (donation_id, from_id, to_id, rating, comment, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	f.CreatedAt = now.Format(time.RFC3339)
	err := r.db.QueryRowContext(ctx, query, f.DonationID, f.FromID, f.ToID, f.Rating, f.Comment, now).Scan(&f.ID)
	return translateError(err)
}

func (r *feedbackRepository) GetByID(ctx context.Context, id int32) (*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` ` + feedbackJoins + ` WHERE f.id = $1`
	f := &domain.Feedback{}
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.DonationID, &f.FromID, &f.ToID, &f.Rating, &f.Comment, &createdAt,
		&f.FromName, &f.FromType, &f.ToName, &f.ToType, &f.DonationName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	f.CreatedAt = createdAt.Format(time.RFC3339)
	return f, nil
}

func (r *feedbackRepository) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` ` + feedbackJoins + ` WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.DonorID != "" {
		query += fmt.Sprintf(" AND (f.from_id = $%d OR f.to_id = $%d)", argIdx, argIdx)
		args = append(args, filter.DonorID)
		argIdx++
	}
	if filter.NGOID != "" {
		query += fmt.Sprintf(" AND (f.from_id = $%d OR f.to_id = $%d)", argIdx, argIdx)
		args = append(args, filter.NGOID)
		argIdx++
	}
	if filter.DonationID != 0 {
		query += fmt.Sprintf(" AND f.donation_id = $%d", argIdx)
		args = append(args, filter.DonationID)
		argIdx++
	}
	query += " ORDER BY f.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var feedback []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		var createdAt time.Time
		if err := rows.Scan(
			&f.ID, &f.DonationID, &f.FromID, &f.ToID, &f.Rating, &f.Comment, &createdAt,
			&f.FromName, &f.FromType, &f.ToName, &f.ToType, &f.DonationName,
		); err != nil {
			return nil, translateError(err)
		}
		f.CreatedAt = createdAt.Format(time.RFC3339)
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

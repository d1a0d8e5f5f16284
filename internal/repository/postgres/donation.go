package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"
)

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

const donationColumns = `d.id, d.name, d.category, d.conditions, d.description, d.donor_id, d.delivery_option, d.location, d.status, d.created_at, u.name,
	COALESCE((SELECT string_agg(image_url, ',' ORDER BY id) FROM donation_images WHERE donation_id = d.id), '')`

func scanDonation(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Donation, error) {
	d := &domain.Donation{}
	var createdAt time.Time
	var images string
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.Conditions, &d.Description, &d.DonorID, &d.DeliveryOption, &d.Location, &d.Status, &createdAt, &d.DonorName, &images)
	if err != nil {
		return nil, err
	}
	d.CreatedAt = createdAt.Format(time.RFC3339)
	d.Images = splitImages(images)
	return d, nil
}

func splitImages(concatenated string) []string {
	if concatenated == "" {
		return []string{}
	}
	return strings.Split(concatenated, ",")
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation, images []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	query := `INSERT INTO donations (name, category, conditions, description, donor_id, delivery_option, location, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	d.CreatedAt = now.Format(time.RFC3339)
	err = tx.QueryRowContext(ctx, query, d.Name, d.Category, d.Conditions, d.Description, d.DonorID, d.DeliveryOption, d.Location, d.Status, now).Scan(&d.ID)
	if err != nil {
		return translateError(err)
	}

	for _, url := range images {
		_, err = tx.ExecContext(ctx, `INSERT INTO donation_images (donation_id, image_url) VALUES ($1, $2)`, d.ID, url)
		if err != nil {
			return translateError(err)
		}
	}
	d.Images = append([]string{}, images...)

	return translateError(tx.Commit())
}

func (r *donationRepository) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + `
	          FROM donations d
	          JOIN users u ON d.donor_id = u.id
	          WHERE d.id = $1`
	d, err := scanDonation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return d, nil
}

func (r *donationRepository) GetWithClaim(ctx context.Context, donationID int32, ngoID string) (*domain.Donation, error) {
	d := &domain.Donation{}
	c := &domain.Claim{}
	query := `SELECT ` + donationColumns + `,
	                 dc.id, dc.ngo_id, dc.status, dc.delivery_charge, dc.claimed_at
	          FROM donations d
	          JOIN users u ON d.donor_id = u.id
	          JOIN donation_claims dc ON d.id = dc.donation_id
	          WHERE d.id = $1 AND dc.ngo_id = $2`
	var createdAt, claimedAt time.Time
	var images string
	err := r.db.QueryRowContext(ctx, query, donationID, ngoID).Scan(
		&d.ID, &d.Name, &d.Category, &d.Conditions, &d.Description, &d.DonorID, &d.DeliveryOption, &d.Location, &d.Status, &createdAt, &d.DonorName, &images,
		&c.ID, &c.NGOID, &c.Status, &c.DeliveryCharge, &claimedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	d.CreatedAt = createdAt.Format(time.RFC3339)
	d.Images = splitImages(images)
	c.DonationID = d.ID
	c.ClaimedAt = claimedAt.Format(time.RFC3339)
	d.Claim = c
	return d, nil
}

func (r *donationRepository) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	query := `SELECT ` + donationColumns + `
	          FROM donations d
	          JOIN users u ON d.donor_id = u.id
	          WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.Category != "" {
		query += fmt.Sprintf(" AND d.category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Conditions != "" {
		query += fmt.Sprintf(" AND d.conditions = $%d", argIdx)
		args = append(args, filter.Conditions)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND d.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.DonorID != "" {
		query += fmt.Sprintf(" AND d.donor_id = $%d", argIdx)
		args = append(args, filter.DonorID)
		argIdx++
	}
	if filter.NGOID != "" {
		query += fmt.Sprintf(" AND d.id IN (SELECT donation_id FROM donation_claims WHERE ngo_id = $%d)", argIdx)
		args = append(args, filter.NGOID)
		argIdx++
	}
	query += " ORDER BY d.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, translateError(err)
		}
		donations = append(donations, *d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) UpdateStatusGuard(ctx context.Context, id int32, from, to domain.DonationStatus) (int64, error) {
	query := `UPDATE donations SET status = $1 WHERE id = $2 AND status = $3`
	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return 0, translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, translateError(err)
	}
	return rows, nil
}

func (r *donationRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM donation_images WHERE donation_id = $1`, id); err != nil {
		return translateError(err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	return translateError(tx.Commit())
}

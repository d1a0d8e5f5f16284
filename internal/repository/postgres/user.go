package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, phone, address, type, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	u.CreatedAt = now.Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.Address, u.Type, u.Status, now)
	return translateError(err)
}

func (r *userRepository) CreateNGODetails(ctx context.Context, d *domain.NGODetails) error {
	query := `INSERT INTO ngo_details (ngo_id, registration_number, description, category)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, d.NGOID, d.RegistrationNumber, d.Description, d.Category)
	return translateError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, COALESCE(phone, ''), COALESCE(address, ''), type, status, created_at FROM users WHERE id = $1`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Type, &u.Status, &createdAt)
	if err != nil {
		return nil, translateError(err)
	}
	u.CreatedAt = createdAt.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, COALESCE(phone, ''), COALESCE(address, ''), type, status, created_at FROM users WHERE email = $1`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Type, &u.Status, &createdAt)
	if err != nil {
		return nil, translateError(err)
	}
	u.CreatedAt = createdAt.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetNGODetails(ctx context.Context, ngoID string) (*domain.NGODetails, error) {
	d := &domain.NGODetails{}
	query := `SELECT ngo_id, registration_number, COALESCE(description, ''), COALESCE(category, '') FROM ngo_details WHERE ngo_id = $1`
	err := r.db.QueryRowContext(ctx, query, ngoID).Scan(&d.NGOID, &d.RegistrationNumber, &d.Description, &d.Category)
	if err != nil {
		return nil, translateError(err)
	}
	return d, nil
}

func (r *userRepository) List(ctx context.Context, userType, status string) ([]domain.User, error) {
	query := `SELECT id, name, email, password_hash, COALESCE(phone, ''), COALESCE(address, ''), type, status, created_at FROM users WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if userType != "" {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, userType)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdAt time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Type, &u.Status, &createdAt); err != nil {
			return nil, translateError(err)
		}
		u.CreatedAt = createdAt.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) ListNGOs(ctx context.Context, category, status string) ([]domain.User, error) {
	query := `SELECT u.id, u.name, u.email, u.password_hash, COALESCE(u.phone, ''), COALESCE(u.address, ''), u.type, u.status, u.created_at,
	                 n.registration_number, COALESCE(n.description, ''), COALESCE(n.category, '')
	          FROM users u
	          JOIN ngo_details n ON u.id = n.ngo_id
	          WHERE u.type = 'ngo'`

	args := []interface{}{}
	argIdx := 1
	if category != "" {
		query += fmt.Sprintf(" AND n.category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND u.status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	query += " ORDER BY u.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var ngos []domain.User
	for rows.Next() {
		var u domain.User
		var d domain.NGODetails
		var createdAt time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Type, &u.Status, &createdAt,
			&d.RegistrationNumber, &d.Description, &d.Category); err != nil {
			return nil, translateError(err)
		}
		u.CreatedAt = createdAt.Format(time.RFC3339)
		d.NGOID = u.ID
		u.NGODetails = &d
		ngos = append(ngos, u)
	}
	return ngos, rows.Err()
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	query := `UPDATE users SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
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
	return nil
}

package donors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surplustoserve/backend/internal/models"
)

// ErrNotFound is returned when no donor matches the lookup. Handlers map it
// to 404/401; any other repository error is a store failure.
var ErrNotFound = errors.New("donor not found")

// Repository handles donor persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a donor repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new donor.
func (r *Repository) Create(ctx context.Context, name, email, passwordHash, phone string) (*models.Donor, error) {
	const q = `INSERT INTO donors (name, email, password_hash, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, phone, created_at`
	var d models.Donor
	err := r.pool.QueryRow(ctx, q, name, email, passwordHash, phone).
		Scan(&d.ID, &d.Name, &d.Email, &d.PasswordHash, &d.Phone, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByEmail returns a donor by email, or ErrNotFound.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.Donor, error) {
	const q = `SELECT id, name, email, password_hash, phone, created_at FROM donors WHERE email = $1`
	var d models.Donor
	err := r.pool.QueryRow(ctx, q, email).Scan(&d.ID, &d.Name, &d.Email, &d.PasswordHash, &d.Phone, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

package ngos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surplustoserve/backend/internal/models"
)

// ErrNotFound is returned when no NGO matches the lookup. Handlers map it
// to 404/401; any other repository error is a store failure.
var ErrNotFound = errors.New("ngo not found")

// Repository handles NGO persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an NGO repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new NGO.
func (r *Repository) Create(ctx context.Context, n *models.NGO) error {
	const q = `INSERT INTO ngos (name, email, password_hash, phone, address, secret_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, n.Name, n.Email, n.PasswordHash, n.Phone, n.Address, n.SecretKey).
		Scan(&n.ID, &n.CreatedAt)
}

// GetByEmail returns an NGO by email, or ErrNotFound.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.NGO, error) {
	const q = `SELECT id, name, email, password_hash, phone, address, secret_key, created_at FROM ngos WHERE email = $1`
	var n models.NGO
	err := r.pool.QueryRow(ctx, q, email).
		Scan(&n.ID, &n.Name, &n.Email, &n.PasswordHash, &n.Phone, &n.Address, &n.SecretKey, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByID returns an NGO by ID, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.NGO, error) {
	const q = `SELECT id, name, email, password_hash, phone, address, secret_key, created_at FROM ngos WHERE id = $1`
	var n models.NGO
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&n.ID, &n.Name, &n.Email, &n.PasswordHash, &n.Phone, &n.Address, &n.SecretKey, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

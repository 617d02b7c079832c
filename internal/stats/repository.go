package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Counts are the platform-wide dashboard numbers.
type Counts struct {
	Donors             int `json:"donors"`
	NGOs               int `json:"ngos"`
	AvailableFood      int `json:"availableFood"`
	CompletedDonations int `json:"completedDonations"`
}

// Repository computes aggregate counts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a stats repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Counts returns all four cardinalities in one round trip.
func (r *Repository) Counts(ctx context.Context) (Counts, error) {
	const q = `SELECT
		(SELECT COUNT(*) FROM donors),
		(SELECT COUNT(*) FROM ngos),
		(SELECT COUNT(*) FROM foods WHERE status = 'available'),
		(SELECT COUNT(*) FROM food_history)`
	var c Counts
	err := r.pool.QueryRow(ctx, q).Scan(&c.Donors, &c.NGOs, &c.AvailableFood, &c.CompletedDonations)
	return c, err
}

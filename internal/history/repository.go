package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surplustoserve/backend/internal/models"
)

// Repository reads the claim ledger. Records are written by the foods
// claim transaction; nothing here mutates them.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a history repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all history records joined with donor and NGO public fields,
// most recent claim first.
func (r *Repository) List(ctx context.Context) ([]models.HistoryWithParties, error) {
	const q = `SELECT h.id, h.food_id, h.donor_id, h.ngo_id, h.food_name, h.quantity,
			COALESCE(h.distance_text, ''), h.phone, h.latitude, h.longitude, h.claimed_at,
			d.name, d.phone, n.name, n.phone
		FROM food_history h
		JOIN donors d ON d.id = h.donor_id
		JOIN ngos n ON n.id = h.ngo_id
		ORDER BY h.claimed_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.HistoryWithParties
	for rows.Next() {
		var h models.HistoryWithParties
		if err := rows.Scan(&h.ID, &h.FoodID, &h.DonorID, &h.NGOID, &h.FoodName, &h.Quantity,
			&h.DistanceText, &h.Phone, &h.Latitude, &h.Longitude, &h.ClaimedAt,
			&h.DonorName, &h.DonorPhone, &h.NGOName, &h.NGOPhone); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

package foods

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surplustoserve/backend/internal/models"
)

var (
	// ErrNotFound is returned when no food matches the lookup. Handlers map
	// it to 404; any other repository error is a store failure.
	ErrNotFound = errors.New("food not found")
	// ErrNotClaimable is returned when a claim target does not exist or is no
	// longer available. The two cases are deliberately not distinguished.
	ErrNotClaimable = errors.New("food not found or already claimed")
)

// Repository handles food persistence and the claim transition.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a food repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new food posting with status 'available'.
func (r *Repository) Create(ctx context.Context, f *models.Food) error {
	const q = `INSERT INTO foods (donor_id, food_name, quantity, distance_text, phone, notes, latitude, longitude)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
		RETURNING id, status, created_at`
	return r.pool.QueryRow(ctx, q, f.DonorID, f.FoodName, f.Quantity, f.DistanceText, f.Phone, f.Notes, f.Latitude, f.Longitude).
		Scan(&f.ID, &f.Status, &f.CreatedAt)
}

// ListAvailable returns available foods joined with donor public fields,
// newest first.
func (r *Repository) ListAvailable(ctx context.Context) ([]models.FoodWithDonor, error) {
	const q = `SELECT f.id, f.donor_id, f.food_name, f.quantity, COALESCE(f.distance_text, ''), f.phone,
			COALESCE(f.notes, ''), f.latitude, f.longitude, f.status, f.created_at, d.name, d.phone
		FROM foods f
		JOIN donors d ON d.id = f.donor_id
		WHERE f.status = 'available'
		ORDER BY f.created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.FoodWithDonor
	for rows.Next() {
		var f models.FoodWithDonor
		if err := rows.Scan(&f.ID, &f.DonorID, &f.FoodName, &f.Quantity, &f.DistanceText, &f.Phone,
			&f.Notes, &f.Latitude, &f.Longitude, &f.Status, &f.CreatedAt, &f.DonorName, &f.DonorPhone); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// ListByDonor returns a donor's own foods, newest first.
func (r *Repository) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]models.Food, error) {
	const q = `SELECT id, donor_id, food_name, quantity, COALESCE(distance_text, ''), phone,
			COALESCE(notes, ''), latitude, longitude, status, created_at
		FROM foods WHERE donor_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Food
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.DonorID, &f.FoodName, &f.Quantity, &f.DistanceText, &f.Phone,
			&f.Notes, &f.Latitude, &f.Longitude, &f.Status, &f.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// GetByID returns a food posting joined with donor public fields.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.FoodWithDonor, error) {
	const q = `SELECT f.id, f.donor_id, f.food_name, f.quantity, COALESCE(f.distance_text, ''), f.phone,
			COALESCE(f.notes, ''), f.latitude, f.longitude, f.status, f.created_at, d.name, d.phone, d.email
		FROM foods f
		JOIN donors d ON d.id = f.donor_id
		WHERE f.id = $1`
	var f models.FoodWithDonor
	err := r.pool.QueryRow(ctx, q, id).Scan(&f.ID, &f.DonorID, &f.FoodName, &f.Quantity, &f.DistanceText, &f.Phone,
		&f.Notes, &f.Latitude, &f.Longitude, &f.Status, &f.CreatedAt, &f.DonorName, &f.DonorPhone, &f.DonorEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Claim flips a food from available to claimed and appends the history
// record in one transaction. The conditional UPDATE is the concurrency
// guard: of two racing claims only one sees an affected row, the other
// gets ErrNotClaimable.
func (r *Repository) Claim(ctx context.Context, foodID, ngoID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const claimQ = `UPDATE foods SET status = 'claimed'
		WHERE id = $1 AND status = 'available'
		RETURNING donor_id, food_name, quantity, COALESCE(distance_text, ''), phone, latitude, longitude`
	var (
		donorID            uuid.UUID
		foodName, quantity string
		distanceText       string
		phone              string
		lat, lon           *float64
	)
	err = tx.QueryRow(ctx, claimQ, foodID).Scan(&donorID, &foodName, &quantity, &distanceText, &phone, &lat, &lon)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotClaimable
	}
	if err != nil {
		return err
	}

	const histQ = `INSERT INTO food_history (food_id, donor_id, ngo_id, food_name, quantity, distance_text, phone, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`
	if _, err := tx.Exec(ctx, histQ, foodID, donorID, ngoID, foodName, quantity, distanceText, phone, lat, lon); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

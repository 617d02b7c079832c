package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surplustoserve/backend/internal/models"
)

// ErrNotFound is returned when no event matches the lookup. Handlers map it
// to 404; any other repository error is a store failure.
var ErrNotFound = errors.New("event not found")

// Repository handles event persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an event repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new event.
func (r *Repository) Create(ctx context.Context, e *models.Event) error {
	const q = `INSERT INTO events (donor_id, title, description, event_date, event_time, venue)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, e.DonorID, e.Title, e.Description, e.EventDate, e.EventTime, e.Venue).
		Scan(&e.ID, &e.CreatedAt)
}

// List returns all events joined with donor public fields, soonest first.
// The inner join drops events whose donor no longer resolves.
func (r *Repository) List(ctx context.Context) ([]models.EventWithDonor, error) {
	const q = `SELECT e.id, e.donor_id, e.title, e.description, e.event_date, e.event_time, e.venue, e.created_at,
			d.name, d.phone
		FROM events e
		JOIN donors d ON d.id = e.donor_id
		ORDER BY e.event_date ASC, e.event_time ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.EventWithDonor
	for rows.Next() {
		var e models.EventWithDonor
		if err := rows.Scan(&e.ID, &e.DonorID, &e.Title, &e.Description, &e.EventDate, &e.EventTime, &e.Venue,
			&e.CreatedAt, &e.DonorName, &e.DonorPhone); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetWithDonor returns an event joined with donor public fields.
func (r *Repository) GetWithDonor(ctx context.Context, id uuid.UUID) (*models.EventWithDonor, error) {
	const q = `SELECT e.id, e.donor_id, e.title, e.description, e.event_date, e.event_time, e.venue, e.created_at,
			d.name, d.phone, d.email
		FROM events e
		JOIN donors d ON d.id = e.donor_id
		WHERE e.id = $1`
	var e models.EventWithDonor
	err := r.pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.DonorID, &e.Title, &e.Description, &e.EventDate, &e.EventTime,
		&e.Venue, &e.CreatedAt, &e.DonorName, &e.DonorPhone, &e.DonorEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByID returns an event without the donor join, for ownership checks.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	const q = `SELECT id, donor_id, title, description, event_date, event_time, venue, created_at
		FROM events WHERE id = $1`
	var e models.Event
	err := r.pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.DonorID, &e.Title, &e.Description, &e.EventDate, &e.EventTime,
		&e.Venue, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update replaces all mutable fields of an event.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, title, description string, eventDate time.Time, eventTime, venue string) error {
	const q = `UPDATE events SET title = $1, description = $2, event_date = $3, event_time = $4, venue = $5
		WHERE id = $6`
	_, err := r.pool.Exec(ctx, q, title, description, eventDate, eventTime, venue, id)
	return err
}

// Delete removes an event by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM events WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}

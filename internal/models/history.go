package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is one completed claim. Records snapshot the food's
// descriptive fields at claim time and are never mutated or deleted.
type HistoryRecord struct {
	ID           uuid.UUID `json:"id"`
	FoodID       uuid.UUID `json:"food_id"`
	DonorID      uuid.UUID `json:"donor_id"`
	NGOID        uuid.UUID `json:"ngo_id"`
	FoodName     string    `json:"food_name"`
	Quantity     string    `json:"quantity"`
	DistanceText string    `json:"distance_text,omitempty"`
	Phone        string    `json:"phone"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	ClaimedAt    time.Time `json:"claimed_at"`
}

// HistoryWithParties is a history record joined with donor and NGO public fields.
type HistoryWithParties struct {
	HistoryRecord
	DonorName  string `json:"donor_name"`
	DonorPhone string `json:"donor_phone"`
	NGOName    string `json:"ngo_name"`
	NGOPhone   string `json:"ngo_phone"`
}

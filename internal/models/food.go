package models

import (
	"time"

	"github.com/google/uuid"
)

// FoodStatus is the lifecycle state of a food posting.
type FoodStatus string

const (
	FoodAvailable FoodStatus = "available"
	FoodClaimed   FoodStatus = "claimed"
)

// Food is a surplus food posting. Status moves available -> claimed exactly
// once and is never reversed.
type Food struct {
	ID           uuid.UUID  `json:"id"`
	DonorID      uuid.UUID  `json:"donor_id"`
	FoodName     string     `json:"food_name"`
	Quantity     string     `json:"quantity"`
	DistanceText string     `json:"distance_text,omitempty"`
	Phone        string     `json:"phone"`
	Notes        string     `json:"notes,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Status       FoodStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FoodWithDonor is a food posting joined with the owning donor's public fields.
type FoodWithDonor struct {
	Food
	DonorName  string `json:"donor_name"`
	DonorPhone string `json:"donor_phone"`
	DonorEmail string `json:"donor_email,omitempty"`
}

// FoodSummary is the reduced shape returned by create and the donor's own list.
type FoodSummary struct {
	ID        uuid.UUID  `json:"id"`
	FoodName  string     `json:"food_name"`
	Quantity  string     `json:"quantity"`
	Status    FoodStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToSummary converts Food to FoodSummary.
func (f *Food) ToSummary() FoodSummary {
	return FoodSummary{ID: f.ID, FoodName: f.FoodName, Quantity: f.Quantity, Status: f.Status, CreatedAt: f.CreatedAt}
}

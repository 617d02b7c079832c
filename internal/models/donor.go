package models

import (
	"time"

	"github.com/google/uuid"
)

// Donor is a registered food/event donor.
type Donor struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

// DonorPublic is Donor without sensitive fields for API responses.
type DonorPublic struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// ToPublic converts Donor to DonorPublic.
func (d *Donor) ToPublic() DonorPublic {
	return DonorPublic{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone}
}

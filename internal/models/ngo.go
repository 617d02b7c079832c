package models

import (
	"time"

	"github.com/google/uuid"
)

// NGO is a registered organization that claims available food.
// SecretKey is a shared secret validated as a second gate after login;
// it is stored as-is and never serialized.
type NGO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	SecretKey    string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NGOPublic is NGO without sensitive fields for API responses.
type NGOPublic struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

// ToPublic converts NGO to NGOPublic.
func (n *NGO) ToPublic() NGOPublic {
	return NGOPublic{ID: n.ID, Name: n.Name, Email: n.Email, Phone: n.Phone, Address: n.Address}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// EventDateLayout is the wire format for event dates.
const EventDateLayout = "2006-01-02"

// Event is a community event posted by a donor. EventTime is free text
// ("5:30 PM"); EventDate is a calendar date.
type Event struct {
	ID          uuid.UUID `json:"id"`
	DonorID     uuid.UUID `json:"donor_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"-"`
	EventTime   string    `json:"event_time"`
	Venue       string    `json:"venue"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventWithDonor is an event joined with the owning donor's public fields.
type EventWithDonor struct {
	Event
	DonorName  string `json:"donor_name"`
	DonorPhone string `json:"donor_phone"`
	DonorEmail string `json:"donor_email,omitempty"`
}

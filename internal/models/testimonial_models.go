package models

import "time"

// Testimonial is a quote shown on the public site once approved.
type Testimonial struct {
	ID           int64     `json:"id" db:"id"`
	ClientName   string    `json:"clientName" db:"client_name"`
	Role         *string   `json:"role" db:"role"` // e.g. "Student", "Organizer"
	Text         string    `json:"text" db:"text"`
	Rating       int       `json:"rating" db:"rating"` // 1-5
	IsApproved   bool      `json:"isApproved" db:"is_approved"`
	CreatedAtUtc time.Time `json:"createdAtUtc" db:"created_at"`
}

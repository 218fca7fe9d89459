package models

import "time"

// Client represents a student or organizer who books the instructor
type Client struct {
	ID           int64      `json:"id" db:"id"`
	FullName     string     `json:"fullName" db:"name"`
	Email        string     `json:"email" db:"email"`
	Phone        *string    `json:"phone" db:"phone"`
	ClientType   ClientType `json:"clientType" db:"client_type"`
	Notes        *string    `json:"notes,omitempty" db:"notes"`
	CreatedAtUtc time.Time  `json:"createdAtUtc" db:"created_at"`
}

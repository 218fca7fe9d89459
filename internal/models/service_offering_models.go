package models

import "time"

// ServiceOffering is a bookable service with an optional price and duration.
type ServiceOffering struct {
	ID              int64       `json:"id" db:"id"`
	Name            string      `json:"name" db:"name"`
	Description     *string     `json:"description" db:"description"`
	ServiceType     ServiceType `json:"serviceType" db:"service_type"`
	BasePriceSek    *float64    `json:"basePriceSek" db:"base_price_sek"`
	DurationMinutes *int        `json:"durationMinutes" db:"duration_minutes"`
	IsActive        bool        `json:"isActive" db:"is_active"`
	CreatedAtUtc    time.Time   `json:"createdAtUtc" db:"created_at"`
}

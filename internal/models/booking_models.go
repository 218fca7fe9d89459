package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrStatusTransitionNotAllowed is returned when a booking may not move to the requested status.
var ErrStatusTransitionNotAllowed = errors.New("booking status transition not allowed")

// BookingStatus defines the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

var bookingStatusEnum = enumSpec{
	kind:     "status",
	names:    []string{"Pending", "Confirmed", "Cancelled", "Completed"},
	ordinals: map[int]string{0: "Pending", 1: "Confirmed", 2: "Cancelled", 3: "Completed"},
}

// bookingTransitions holds the allowed moves out of every non-terminal status.
// Cancelled and Completed are absent: they are locked.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled},
}

// ParseBookingStatus accepts a status name (any case) or its ordinal (0-3).
func ParseBookingStatus(raw string) (BookingStatus, error) {
	name, err := bookingStatusEnum.parse(raw)
	return BookingStatus(name), err
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	name, err := bookingStatusEnum.unmarshal(data)
	if err != nil {
		return err
	}
	if name != "" {
		*s = BookingStatus(name)
	}
	return nil
}

// Ordinal is the position of the status in the lifecycle, -1 if unknown.
func (s BookingStatus) Ordinal() int {
	for i, st := range BookingStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// CanTransitionTo reports whether a booking in status s may be moved to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateStatusTransition returns an error naming both statuses when current may not move to next.
func ValidateStatusTransition(current, next BookingStatus) error {
	if current.IsTerminal() {
		return fmt.Errorf("%w: cannot change status once the booking is '%s'", ErrStatusTransitionNotAllowed, current)
	}
	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: booking status change from '%s' to '%s' is not allowed", ErrStatusTransitionNotAllowed, current, next)
	}
	return nil
}

// Booking is a client's request to receive a service at a preferred time.
type Booking struct {
	ID                int64         `json:"id" db:"id"`
	ClientID          int64         `json:"clientId" db:"client_id"`
	ServiceOfferingID int64         `json:"serviceOfferingId" db:"service_offering_id"`
	PreferredDateTime time.Time     `json:"preferredDateTime" db:"preferred_date_time"`
	LocationType      LocationType  `json:"locationType" db:"location_type"`
	LocationDetails   *string       `json:"locationDetails" db:"location_details"`
	Message           *string       `json:"message" db:"message"`
	Status            BookingStatus `json:"status" db:"status"`
	CreatedAtUtc      time.Time     `json:"createdAtUtc" db:"created_at"`
}

// BookingSortKey selects the ordering of a booking search.
type BookingSortKey string

const (
	BookingSortByDate    BookingSortKey = "date"
	BookingSortByCreated BookingSortKey = "created"
	BookingSortByStatus  BookingSortKey = "status"
)

// ParseBookingSortKey never fails: anything unrecognised sorts by date.
func ParseBookingSortKey(raw string) BookingSortKey {
	switch BookingSortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case BookingSortByCreated:
		return BookingSortByCreated
	case BookingSortByStatus:
		return BookingSortByStatus
	default:
		return BookingSortByDate
	}
}

// BookingFilters defines the available filters for searching bookings.
// Every non-nil filter is combined with AND. FromDate and ToDate are inclusive.
type BookingFilters struct {
	Status            *BookingStatus
	ClientID          *int64
	ServiceOfferingID *int64
	FromDate          *time.Time
	ToDate            *time.Time
	SortBy            BookingSortKey
	Descending        bool
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/repositories"
	"dance_site_backend/pkg/utils"
)

const (
	MaxLocationDetailsLength = 200
	MaxBookingMessageLength  = 500
)

// --- Custom Service Errors for Booking ---
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingValidation    = errors.New("booking validation failed")
	ErrBookingRuleViolation = errors.New("booking business rule violated")
)

// --- Booking DTOs ---

// CreateBookingRequest is the payload for a new booking. Any status sent by the
// caller is ignored: new bookings always start as Pending.
type CreateBookingRequest struct {
	ClientID          int64                `json:"clientId" binding:"required,gt=0"`
	ServiceOfferingID int64                `json:"serviceOfferingId" binding:"required,gt=0"`
	PreferredDateTime time.Time            `json:"preferredDateTime" binding:"required"`
	LocationType      *models.LocationType `json:"locationType"`
	LocationDetails   *string              `json:"locationDetails"`
	Message           *string              `json:"message"`
}

// UpdateBookingRequest carries only the fields the caller wants to change; nil means unchanged.
type UpdateBookingRequest struct {
	PreferredDateTime *time.Time            `json:"preferredDateTime"`
	LocationType      *models.LocationType  `json:"locationType"`
	LocationDetails   *string               `json:"locationDetails"`
	Message           *string               `json:"message"`
	Status            *models.BookingStatus `json:"status"`
}

// applyTo merges the supplied fields onto the stored booking.
func (req UpdateBookingRequest) applyTo(booking *models.Booking) {
	if req.PreferredDateTime != nil {
		booking.PreferredDateTime = req.PreferredDateTime.UTC()
	}
	if req.LocationType != nil {
		booking.LocationType = *req.LocationType
	}
	if req.LocationDetails != nil {
		booking.LocationDetails = req.LocationDetails
	}
	if req.Message != nil {
		booking.Message = req.Message
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
}

// --- BookingService Interface ---
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID int64) (*models.Booking, error)
	GetBookings(ctx context.Context) ([]models.Booking, error)
	SearchBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID int64, req UpdateBookingRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

// --- bookingService Implementation ---
type bookingService struct {
	bookingRepo  repositories.BookingRepository
	clientRepo   repositories.ClientRepository
	offeringRepo repositories.ServiceOfferingRepository
	db           *sql.DB
	now          func() time.Time
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	br repositories.BookingRepository,
	cr repositories.ClientRepository,
	sr repositories.ServiceOfferingRepository,
	db *sql.DB,
) BookingService {
	return &bookingService{
		bookingRepo:  br,
		clientRepo:   cr,
		offeringRepo: sr,
		db:           db,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *bookingService) validatePreferredDateTime(t time.Time) error {
	if !t.After(s.now()) {
		return fmt.Errorf("%w: preferredDateTime must be in the future", ErrBookingValidation)
	}
	return nil
}

func validateBookingText(locationDetails, message *string) error {
	if locationDetails != nil && utf8.RuneCountInString(*locationDetails) > MaxLocationDetailsLength {
		return fmt.Errorf("%w: locationDetails cannot exceed %d characters", ErrBookingValidation, MaxLocationDetailsLength)
	}
	if message != nil && utf8.RuneCountInString(*message) > MaxBookingMessageLength {
		return fmt.Errorf("%w: message cannot exceed %d characters", ErrBookingValidation, MaxBookingMessageLength)
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if err := s.validatePreferredDateTime(req.PreferredDateTime); err != nil {
		return nil, err
	}

	clientExists, err := s.clientRepo.ClientExists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate client for booking: %w", err)
	}
	if !clientExists {
		return nil, fmt.Errorf("%w: client with ID %d does not exist", ErrBookingValidation, req.ClientID)
	}

	offeringExists, err := s.offeringRepo.ServiceOfferingExists(ctx, req.ServiceOfferingID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate service offering for booking: %w", err)
	}
	if !offeringExists {
		return nil, fmt.Errorf("%w: service offering with ID %d does not exist", ErrBookingValidation, req.ServiceOfferingID)
	}

	if err := validateBookingText(req.LocationDetails, req.Message); err != nil {
		return nil, err
	}

	locationType := models.LocationTypeOnSite
	if req.LocationType != nil {
		locationType = *req.LocationType
	}

	booking := &models.Booking{
		ClientID:          req.ClientID,
		ServiceOfferingID: req.ServiceOfferingID,
		PreferredDateTime: req.PreferredDateTime.UTC(),
		LocationType:      locationType,
		LocationDetails:   req.LocationDetails,
		Message:           req.Message,
		Status:            models.BookingStatusPending,
		CreatedAtUtc:      s.now(),
	}

	createdBooking, err := s.bookingRepo.CreateBooking(ctx, s.db, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking in repository: %w", err)
	}
	return createdBooking, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}
	return booking, nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) SearchBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	filters.SortBy = models.ParseBookingSortKey(string(filters.SortBy))
	utils.LogDebug("Searching bookings", map[string]interface{}{
		"sort_by":    string(filters.SortBy),
		"descending": filters.Descending,
	})

	bookings, err := s.bookingRepo.SearchBookings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBooking applies a partial update. All checks run before anything is merged,
// so a rejected request leaves the stored booking untouched.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID int64, req UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking for update: %w", err)
	}

	if req.PreferredDateTime != nil {
		if err := s.validatePreferredDateTime(*req.PreferredDateTime); err != nil {
			return nil, err
		}
	}
	if err := validateBookingText(req.LocationDetails, req.Message); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := models.ValidateStatusTransition(booking.Status, *req.Status); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBookingRuleViolation, err)
		}
	}

	req.applyTo(booking)

	updatedBooking, err := s.bookingRepo.UpdateBooking(ctx, s.db, booking)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking in repository: %w", err)
	}
	return updatedBooking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID int64) error {
	err := s.bookingRepo.DeleteBooking(ctx, s.db, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

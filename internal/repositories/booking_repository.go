package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dance_site_backend/internal/models"
)

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	CreateBooking(ctx context.Context, executor SQLExecutor, booking *models.Booking) (*models.Booking, error)
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	GetBookings(ctx context.Context) ([]models.Booking, error)
	SearchBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, executor SQLExecutor, booking *models.Booking) (*models.Booking, error)
	DeleteBooking(ctx context.Context, executor SQLExecutor, id int64) error
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const selectBookingFields = `
	b.id, b.client_id, b.service_offering_id, b.preferred_date_time, b.location_type,
	b.location_details, b.message, b.status, b.created_at
	FROM bookings b`

func scanBookingRow(row scanner) (*models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID, &booking.ClientID, &booking.ServiceOfferingID, &booking.PreferredDateTime,
		&booking.LocationType, &booking.LocationDetails, &booking.Message, &booking.Status,
		&booking.CreatedAtUtc,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning booking: %v", ErrDatabaseError, err)
	}
	booking.PreferredDateTime = booking.PreferredDateTime.UTC()
	booking.CreatedAtUtc = booking.CreatedAtUtc.UTC()
	return &booking, nil
}

func (r *bookingRepository) CreateBooking(ctx context.Context, executor SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	query := `INSERT INTO bookings
	            (client_id, service_offering_id, preferred_date_time, location_type, location_details, message, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		booking.ClientID, booking.ServiceOfferingID, booking.PreferredDateTime, string(booking.LocationType),
		booking.LocationDetails, booking.Message, string(booking.Status), booking.CreatedAtUtc,
	).Scan(&booking.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: creating booking: %v", ErrDatabaseError, err)
	}
	return booking, nil
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := "SELECT " + selectBookingFields + " WHERE b.id = $1"
	return scanBookingRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return r.queryBookings(ctx, "SELECT "+selectBookingFields+" ORDER BY b.id ASC")
}

func (r *bookingRepository) SearchBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	query, args := buildBookingSearchQuery(filters)
	return r.queryBookings(ctx, query, args...)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying bookings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, scanErr := scanBookingRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		bookings = append(bookings, *booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, nil
}

// buildBookingSearchQuery turns the filters into a parameterised SELECT.
func buildBookingSearchQuery(filters models.BookingFilters) (string, []interface{}) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + selectBookingFields)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argCount))
		args = append(args, string(*filters.Status))
		argCount++
	}
	if filters.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("b.client_id = $%d", argCount))
		args = append(args, *filters.ClientID)
		argCount++
	}
	if filters.ServiceOfferingID != nil {
		conditions = append(conditions, fmt.Sprintf("b.service_offering_id = $%d", argCount))
		args = append(args, *filters.ServiceOfferingID)
		argCount++
	}
	if filters.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("b.preferred_date_time >= $%d", argCount))
		args = append(args, *filters.FromDate)
		argCount++
	}
	if filters.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("b.preferred_date_time <= $%d", argCount))
		args = append(args, *filters.ToDate)
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(bookingOrderClause(filters.SortBy, filters.Descending))

	return queryBuilder.String(), args
}

func bookingOrderClause(sortBy models.BookingSortKey, descending bool) string {
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	var column string
	switch sortBy {
	case models.BookingSortByCreated:
		column = "b.created_at"
	case models.BookingSortByStatus:
		column = bookingStatusOrdinalExpr()
	default:
		column = "b.preferred_date_time"
	}
	return fmt.Sprintf(" ORDER BY %s %s, b.id %s", column, direction, direction)
}

// bookingStatusOrdinalExpr orders status by lifecycle position rather than alphabetically.
func bookingStatusOrdinalExpr() string {
	var sb strings.Builder
	sb.WriteString("CASE b.status")
	for _, status := range models.BookingStatuses {
		fmt.Fprintf(&sb, " WHEN '%s' THEN %d", status, status.Ordinal())
	}
	sb.WriteString(" END")
	return sb.String()
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, executor SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	query := `UPDATE bookings SET
	            preferred_date_time = $1, location_type = $2, location_details = $3,
	            message = $4, status = $5
	          WHERE id = $6`

	result, err := executor.ExecContext(ctx, query,
		booking.PreferredDateTime, string(booking.LocationType), booking.LocationDetails,
		booking.Message, string(booking.Status), booking.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: updating booking ID %d: %v", ErrDatabaseError, booking.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: getting rows affected for booking ID %d: %v", ErrDatabaseError, booking.ID, err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}
	return booking, nil
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, executor SQLExecutor, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting booking ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dance_site_backend/internal/models"
)

// ServiceOfferingRepository defines the interface for service offering database operations.
type ServiceOfferingRepository interface {
	CreateServiceOffering(ctx context.Context, executor SQLExecutor, offering *models.ServiceOffering) (int64, error)
	GetServiceOfferingByID(ctx context.Context, id int64) (*models.ServiceOffering, error)
	ServiceOfferingExists(ctx context.Context, id int64) (bool, error)
	GetServiceOfferings(ctx context.Context, activeOnly bool) ([]models.ServiceOffering, error)
	UpdateServiceOffering(ctx context.Context, executor SQLExecutor, offering *models.ServiceOffering) error
	DeleteServiceOffering(ctx context.Context, executor SQLExecutor, id int64) error
}

type serviceOfferingRepository struct {
	db *sql.DB
}

func NewServiceOfferingRepository(db *sql.DB) ServiceOfferingRepository {
	return &serviceOfferingRepository{db: db}
}

const selectServiceOfferingFields = `SELECT id, name, description, service_type, base_price_sek,
	duration_minutes, is_active, created_at FROM service_offerings`

func scanServiceOfferingRow(row scanner) (*models.ServiceOffering, error) {
	var offering models.ServiceOffering
	var price sql.NullFloat64
	var duration sql.NullInt32

	err := row.Scan(
		&offering.ID, &offering.Name, &offering.Description, &offering.ServiceType, &price,
		&duration, &offering.IsActive, &offering.CreatedAtUtc,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning service offering: %v", ErrDatabaseError, err)
	}
	if price.Valid {
		p := price.Float64
		offering.BasePriceSek = &p
	}
	if duration.Valid {
		d := int(duration.Int32)
		offering.DurationMinutes = &d
	}
	offering.CreatedAtUtc = offering.CreatedAtUtc.UTC()
	return &offering, nil
}

func (r *serviceOfferingRepository) CreateServiceOffering(ctx context.Context, executor SQLExecutor, offering *models.ServiceOffering) (int64, error) {
	query := `INSERT INTO service_offerings
	            (name, description, service_type, base_price_sek, duration_minutes, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		offering.Name, offering.Description, string(offering.ServiceType), offering.BasePriceSek,
		offering.DurationMinutes, offering.IsActive, offering.CreatedAtUtc,
	).Scan(&offering.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating service offering: %v", ErrDatabaseError, err)
	}
	return offering.ID, nil
}

func (r *serviceOfferingRepository) GetServiceOfferingByID(ctx context.Context, id int64) (*models.ServiceOffering, error) {
	return scanServiceOfferingRow(r.db.QueryRowContext(ctx, selectServiceOfferingFields+" WHERE id = $1", id))
}

func (r *serviceOfferingRepository) ServiceOfferingExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM service_offerings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: checking service offering ID %d: %v", ErrDatabaseError, id, err)
	}
	return exists, nil
}

func (r *serviceOfferingRepository) GetServiceOfferings(ctx context.Context, activeOnly bool) ([]models.ServiceOffering, error) {
	query := selectServiceOfferingFields
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying service offerings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	offerings := []models.ServiceOffering{}
	for rows.Next() {
		offering, scanErr := scanServiceOfferingRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		offerings = append(offerings, *offering)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating service offering rows: %v", ErrDatabaseError, err)
	}
	return offerings, nil
}

func (r *serviceOfferingRepository) UpdateServiceOffering(ctx context.Context, executor SQLExecutor, offering *models.ServiceOffering) error {
	query := `UPDATE service_offerings SET
	            name = $1, description = $2, service_type = $3, base_price_sek = $4,
	            duration_minutes = $5, is_active = $6
	          WHERE id = $7`

	result, err := executor.ExecContext(ctx, query,
		offering.Name, offering.Description, string(offering.ServiceType), offering.BasePriceSek,
		offering.DurationMinutes, offering.IsActive, offering.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating service offering ID %d: %v", ErrDatabaseError, offering.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for service offering ID %d: %v", ErrDatabaseError, offering.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteServiceOffering hard-deletes the offering and, by cascade, its bookings.
func (r *serviceOfferingRepository) DeleteServiceOffering(ctx context.Context, executor SQLExecutor, id int64) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM service_offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting service offering ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting service offering ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

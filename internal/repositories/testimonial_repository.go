package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dance_site_backend/internal/models"
)

type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, executor SQLExecutor, t *models.Testimonial) (int64, error)
	GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error)
	GetTestimonials(ctx context.Context, approved *bool) ([]models.Testimonial, error)
	SetTestimonialApproved(ctx context.Context, executor SQLExecutor, id int64, approved bool) error
	DeleteTestimonial(ctx context.Context, executor SQLExecutor, id int64) error
}

type testimonialRepository struct {
	db *sql.DB
}

func NewTestimonialRepository(db *sql.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

const selectTestimonialFields = `SELECT id, client_name, role, text, rating, is_approved, created_at FROM testimonials`

func scanTestimonialRow(row scanner) (*models.Testimonial, error) {
	var t models.Testimonial
	var role sql.NullString
	if err := row.Scan(&t.ID, &t.ClientName, &role, &t.Text, &t.Rating, &t.IsApproved, &t.CreatedAtUtc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning testimonial: %v", ErrDatabaseError, err)
	}
	t.Role = nullStringPtr(role)
	t.CreatedAtUtc = t.CreatedAtUtc.UTC()
	return &t, nil
}

func (r *testimonialRepository) CreateTestimonial(ctx context.Context, executor SQLExecutor, t *models.Testimonial) (int64, error) {
	query := `INSERT INTO testimonials (client_name, role, text, rating, is_approved, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	err := executor.QueryRowContext(ctx, query,
		t.ClientName, t.Role, t.Text, t.Rating, t.IsApproved, t.CreatedAtUtc,
	).Scan(&t.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating testimonial: %v", ErrDatabaseError, err)
	}
	return t.ID, nil
}

func (r *testimonialRepository) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	return scanTestimonialRow(r.db.QueryRowContext(ctx, selectTestimonialFields+" WHERE id = $1", id))
}

// GetTestimonials lists testimonials, newest first. A nil approved returns all of them.
func (r *testimonialRepository) GetTestimonials(ctx context.Context, approved *bool) ([]models.Testimonial, error) {
	query := selectTestimonialFields
	var args []interface{}
	if approved != nil {
		query += " WHERE is_approved = $1"
		args = append(args, *approved)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying testimonials: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		t, scanErr := scanTestimonialRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		testimonials = append(testimonials, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating testimonial rows: %v", ErrDatabaseError, err)
	}
	return testimonials, nil
}

func (r *testimonialRepository) SetTestimonialApproved(ctx context.Context, executor SQLExecutor, id int64, approved bool) error {
	result, err := executor.ExecContext(ctx, `UPDATE testimonials SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("%w: approving testimonial ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *testimonialRepository) DeleteTestimonial(ctx context.Context, executor SQLExecutor, id int64) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting testimonial ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

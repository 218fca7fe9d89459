package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/repositories"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type CreateTestimonialRequest struct {
	ClientName string  `json:"clientName" binding:"required,max=100"`
	Role       *string `json:"role" binding:"omitempty,max=100"`
	Text       string  `json:"text" binding:"required,max=1000"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
}

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*models.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error)
	GetTestimonials(ctx context.Context, approved *bool) ([]models.Testimonial, error)
	ApproveTestimonial(ctx context.Context, id int64) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error
}

type testimonialService struct {
	repo repositories.TestimonialRepository
	db   *sql.DB
	now  func() time.Time
}

func NewTestimonialService(repo repositories.TestimonialRepository, db *sql.DB) TestimonialService {
	return &testimonialService{
		repo: repo,
		db:   db,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateTestimonial stores a submission unapproved; it stays off the public site until approved.
func (s *testimonialService) CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		ClientName:   strings.TrimSpace(req.ClientName),
		Role:         req.Role,
		Text:         strings.TrimSpace(req.Text),
		Rating:       req.Rating,
		IsApproved:   false,
		CreatedAtUtc: s.now(),
	}
	if _, err := s.repo.CreateTestimonial(ctx, s.db, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	t, err := s.repo.GetTestimonialByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial by ID: %w", err)
	}
	return t, nil
}

func (s *testimonialService) GetTestimonials(ctx context.Context, approved *bool) ([]models.Testimonial, error) {
	testimonials, err := s.repo.GetTestimonials(ctx, approved)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *testimonialService) ApproveTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	if err := s.repo.SetTestimonialApproved(ctx, s.db, id, true); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to approve testimonial: %w", err)
	}
	return s.GetTestimonialByID(ctx, id)
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTestimonial(ctx, s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

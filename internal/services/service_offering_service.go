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

// --- Custom Service Errors for Service Offerings ---
var (
	ErrServiceOfferingNotFound   = errors.New("service offering not found")
	ErrServiceOfferingValidation = errors.New("service offering validation error")
)

// --- Service Offering DTOs ---
type CreateServiceOfferingRequest struct {
	Name            string             `json:"name" binding:"required,min=2,max=100"`
	Description     *string            `json:"description" binding:"omitempty,max=500"`
	ServiceType     models.ServiceType `json:"serviceType" binding:"required"`
	BasePriceSek    *float64           `json:"basePriceSek" binding:"omitempty,gte=0,lte=20000"`
	DurationMinutes *int               `json:"durationMinutes" binding:"omitempty,gte=10,lte=300"`
}

// UpdateServiceOfferingRequest replaces every editable field of an offering.
type UpdateServiceOfferingRequest struct {
	Name            string             `json:"name" binding:"required,min=2,max=100"`
	Description     *string            `json:"description" binding:"omitempty,max=500"`
	ServiceType     models.ServiceType `json:"serviceType" binding:"required"`
	BasePriceSek    *float64           `json:"basePriceSek" binding:"omitempty,gte=0,lte=20000"`
	DurationMinutes *int               `json:"durationMinutes" binding:"omitempty,gte=10,lte=300"`
	IsActive        bool               `json:"isActive"`
}

// --- ServiceOfferingService Interface ---
type ServiceOfferingService interface {
	CreateServiceOffering(ctx context.Context, req CreateServiceOfferingRequest) (*models.ServiceOffering, error)
	GetServiceOfferingByID(ctx context.Context, id int64) (*models.ServiceOffering, error)
	GetServiceOfferings(ctx context.Context, activeOnly bool) ([]models.ServiceOffering, error)
	UpdateServiceOffering(ctx context.Context, id int64, req UpdateServiceOfferingRequest) (*models.ServiceOffering, error)
	DeleteServiceOffering(ctx context.Context, id int64) error
}

type serviceOfferingService struct {
	offeringRepo repositories.ServiceOfferingRepository
	db           *sql.DB
	now          func() time.Time
}

func NewServiceOfferingService(repo repositories.ServiceOfferingRepository, db *sql.DB) ServiceOfferingService {
	return &serviceOfferingService{
		offeringRepo: repo,
		db:           db,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateServiceOffering always creates the offering as active.
func (s *serviceOfferingService) CreateServiceOffering(ctx context.Context, req CreateServiceOfferingRequest) (*models.ServiceOffering, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrServiceOfferingValidation)
	}

	offering := &models.ServiceOffering{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		ServiceType:     req.ServiceType,
		BasePriceSek:    req.BasePriceSek,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
		CreatedAtUtc:    s.now(),
	}

	if _, err := s.offeringRepo.CreateServiceOffering(ctx, s.db, offering); err != nil {
		return nil, fmt.Errorf("failed to create service offering: %w", err)
	}
	return offering, nil
}

func (s *serviceOfferingService) GetServiceOfferingByID(ctx context.Context, id int64) (*models.ServiceOffering, error) {
	offering, err := s.offeringRepo.GetServiceOfferingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceOfferingNotFound
		}
		return nil, fmt.Errorf("failed to get service offering by ID: %w", err)
	}
	return offering, nil
}

func (s *serviceOfferingService) GetServiceOfferings(ctx context.Context, activeOnly bool) ([]models.ServiceOffering, error) {
	offerings, err := s.offeringRepo.GetServiceOfferings(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get service offerings: %w", err)
	}
	return offerings, nil
}

func (s *serviceOfferingService) UpdateServiceOffering(ctx context.Context, id int64, req UpdateServiceOfferingRequest) (*models.ServiceOffering, error) {
	offering, err := s.offeringRepo.GetServiceOfferingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceOfferingNotFound
		}
		return nil, fmt.Errorf("failed to find service offering for update: %w", err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrServiceOfferingValidation)
	}

	offering.Name = strings.TrimSpace(req.Name)
	offering.Description = req.Description
	offering.ServiceType = req.ServiceType
	offering.BasePriceSek = req.BasePriceSek
	offering.DurationMinutes = req.DurationMinutes
	offering.IsActive = req.IsActive

	if err := s.offeringRepo.UpdateServiceOffering(ctx, s.db, offering); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceOfferingNotFound
		}
		return nil, fmt.Errorf("failed to update service offering: %w", err)
	}
	return offering, nil
}

// DeleteServiceOffering hard-deletes; set isActive=false through an update to retire an offering instead.
func (s *serviceOfferingService) DeleteServiceOffering(ctx context.Context, id int64) error {
	err := s.offeringRepo.DeleteServiceOffering(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrServiceOfferingNotFound
		}
		return fmt.Errorf("failed to delete service offering: %w", err)
	}
	return nil
}

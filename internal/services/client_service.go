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
	"dance_site_backend/pkg/utils"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrClientValidation = errors.New("client data validation error")
)

// --- Client DTOs ---
type CreateClientRequest struct {
	FullName   string             `json:"fullName" binding:"required,max=100"`
	Email      string             `json:"email" binding:"required,email,max=200"`
	Phone      *string            `json:"phone" binding:"omitempty,max=30"`
	ClientType *models.ClientType `json:"clientType"`
	Notes      *string            `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateClientRequest struct {
	FullName   *string            `json:"fullName" binding:"omitempty,max=100"`
	Email      *string            `json:"email" binding:"omitempty,email,max=200"`
	Phone      *string            `json:"phone" binding:"omitempty,max=30"`
	ClientType *models.ClientType `json:"clientType"`
	Notes      *string            `json:"notes" binding:"omitempty,max=1000"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*models.Client, error)
	GetClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, clientID int64, req UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
	now        func() time.Time
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{
		clientRepo: repo,
		db:         db,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *clientService) CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	if utils.IsEmpty(req.FullName) {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrClientValidation)
	}

	clientType := models.ClientTypeOther
	if req.ClientType != nil {
		clientType = *req.ClientType
	}

	client := &models.Client{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        utils.NewNullString(trimPtr(req.Phone)),
		ClientType:   clientType,
		Notes:        req.Notes,
		CreatedAtUtc: s.now(),
	}

	if _, err := s.clientRepo.CreateClient(ctx, s.db, client); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, client.Email)
		}
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req UpdateClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	if req.FullName != nil {
		if utils.IsEmpty(*req.FullName) {
			return nil, fmt.Errorf("%w: full name cannot be empty if provided", ErrClientValidation)
		}
		client.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		if utils.IsEmpty(*req.Email) {
			return nil, fmt.Errorf("%w: email cannot be empty if provided", ErrClientValidation)
		}
		client.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		client.Phone = utils.NewNullString(strings.TrimSpace(*req.Phone))
	}
	if req.ClientType != nil {
		client.ClientType = *req.ClientType
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}

	err = s.clientRepo.UpdateClient(ctx, s.db, client)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, client.Email)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return client, nil
}

// DeleteClient removes the client together with all of their bookings.
func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	err := s.clientRepo.DeleteClient(ctx, s.db, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

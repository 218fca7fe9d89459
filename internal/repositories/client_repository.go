package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dance_site_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(ctx context.Context, id int64) (*models.Client, error)
	ClientExists(ctx context.Context, id int64) (bool, error)
	GetClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, executor SQLExecutor, client *models.Client) error
	DeleteClient(ctx context.Context, executor SQLExecutor, id int64) error
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

const selectClientFields = `SELECT id, name, email, phone, client_type, notes, created_at FROM clients`

func scanClientRow(row scanner) (*models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID, &client.FullName, &client.Email, &client.Phone,
		&client.ClientType, &client.Notes, &client.CreatedAtUtc,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
	}
	client.CreatedAtUtc = client.CreatedAtUtc.UTC()
	return &client, nil
}

// CreateClient inserts a new client into the database.
func (r *clientRepository) CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (name, email, phone, client_type, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		client.FullName, client.Email, client.Phone, string(client.ClientType), client.Notes, client.CreatedAtUtc,
	).Scan(&client.ID)
	if err != nil {
		return 0, wrapClientWriteError(err, "creating client")
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(ctx context.Context, id int64) (*models.Client, error) {
	return scanClientRow(r.db.QueryRowContext(ctx, selectClientFields+" WHERE id = $1", id))
}

// ClientExists reports whether a client row with the given ID exists.
func (r *clientRepository) ClientExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: checking client ID %d: %v", ErrDatabaseError, id, err)
	}
	return exists, nil
}

// GetClients retrieves all clients ordered by name.
func (r *clientRepository) GetClients(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db.QueryContext(ctx, selectClientFields+" ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		client, scanErr := scanClientRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient updates an existing client in the database.
func (r *clientRepository) UpdateClient(ctx context.Context, executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET
	            name = $1, email = $2, phone = $3, client_type = $4, notes = $5
	          WHERE id = $6`

	result, err := executor.ExecContext(ctx, query,
		client.FullName, client.Email, client.Phone, string(client.ClientType), client.Notes, client.ID,
	)
	if err != nil {
		return wrapClientWriteError(err, fmt.Sprintf("updating client ID %d", client.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient removes a client; their bookings go with them through ON DELETE CASCADE.
func (r *clientRepository) DeleteClient(ctx context.Context, executor SQLExecutor, id int64) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func wrapClientWriteError(err error, action string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, action, err)
}

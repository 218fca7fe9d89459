package services

import (
	"context"
	"testing"
	"time"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClientService() (*clientService, *mockClientRepo) {
	repo := &mockClientRepo{}
	svc := NewClientService(repo, nil).(*clientService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestClientService_Create_DefaultsTypeToOther(t *testing.T) {
	svc, repo := newTestClientService()
	repo.On("CreateClient", mock.Anything, mock.Anything, mock.MatchedBy(func(c *models.Client) bool {
		return c.ClientType == models.ClientTypeOther && c.FullName == "Anna Berg" && c.Phone == nil
	})).Return(int64(4), nil)

	client, err := svc.CreateClient(context.Background(), CreateClientRequest{
		FullName: "  Anna Berg ",
		Email:    "anna@example.com",
		Phone:    strPtr("   "),
	})

	require.NoError(t, err)
	assert.Equal(t, models.ClientTypeOther, client.ClientType)
	assert.True(t, client.CreatedAtUtc.Equal(fixedNow))
	repo.AssertExpectations(t)
}

func TestClientService_Create_BlankName(t *testing.T) {
	svc, repo := newTestClientService()

	_, err := svc.CreateClient(context.Background(), CreateClientRequest{FullName: "  ", Email: "a@b.se"})

	assert.ErrorIs(t, err, ErrClientValidation)
	repo.AssertNotCalled(t, "CreateClient", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService_Create_DuplicateEmail(t *testing.T) {
	svc, repo := newTestClientService()
	repo.On("CreateClient", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), repositories.ErrDuplicateKey)

	_, err := svc.CreateClient(context.Background(), CreateClientRequest{FullName: "Anna", Email: "a@b.se"})

	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestClientService_Update_PartialFields(t *testing.T) {
	svc, repo := newTestClientService()
	stored := &models.Client{ID: 3, FullName: "Old Name", Email: "old@example.com", ClientType: models.ClientTypeStudent}
	repo.On("GetClientByID", mock.Anything, int64(3)).Return(stored, nil)
	repo.On("UpdateClient", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	organizer := models.ClientTypeOrganizer
	client, err := svc.UpdateClient(context.Background(), 3, UpdateClientRequest{ClientType: &organizer})

	require.NoError(t, err)
	assert.Equal(t, "Old Name", client.FullName)
	assert.Equal(t, "old@example.com", client.Email)
	assert.Equal(t, models.ClientTypeOrganizer, client.ClientType)
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc, repo := newTestClientService()
	repo.On("GetClientByID", mock.Anything, int64(9)).Return(nil, repositories.ErrNotFound)

	_, err := svc.UpdateClient(context.Background(), 9, UpdateClientRequest{FullName: strPtr("X")})

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestClientService()
	repo.On("DeleteClient", mock.Anything, mock.Anything, int64(9)).Return(repositories.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteClient(context.Background(), 9), ErrClientNotFound)
}

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

func newTestTestimonialService() (*testimonialService, *mockTestimonialRepo) {
	repo := &mockTestimonialRepo{}
	svc := NewTestimonialService(repo, nil).(*testimonialService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestTestimonialService_Create_Unapproved(t *testing.T) {
	svc, repo := newTestTestimonialService()
	repo.On("CreateTestimonial", mock.Anything, mock.Anything, mock.MatchedBy(func(tm *models.Testimonial) bool {
		return !tm.IsApproved && tm.Rating == 5
	})).Return(int64(1), nil)

	tm, err := svc.CreateTestimonial(context.Background(), CreateTestimonialRequest{
		ClientName: "Maja", Text: "Great lessons", Rating: 5,
	})

	require.NoError(t, err)
	assert.False(t, tm.IsApproved)
	repo.AssertExpectations(t)
}

func TestTestimonialService_Approve(t *testing.T) {
	svc, repo := newTestTestimonialService()
	repo.On("SetTestimonialApproved", mock.Anything, mock.Anything, int64(3), true).Return(nil)
	repo.On("GetTestimonialByID", mock.Anything, int64(3)).Return(&models.Testimonial{ID: 3, IsApproved: true}, nil)

	tm, err := svc.ApproveTestimonial(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, tm.IsApproved)
}

func TestTestimonialService_Approve_NotFound(t *testing.T) {
	svc, repo := newTestTestimonialService()
	repo.On("SetTestimonialApproved", mock.Anything, mock.Anything, int64(8), true).Return(repositories.ErrNotFound)

	_, err := svc.ApproveTestimonial(context.Background(), 8)

	assert.ErrorIs(t, err, ErrTestimonialNotFound)
}

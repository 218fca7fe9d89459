package handlers

import (
	"net/http"
	"testing"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestimonialRouter(t *testing.T) (*mockTestimonialService, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &mockTestimonialService{}
	h := NewTestimonialHandler(svc)

	r := gin.New()
	r.GET("/api/Testimonials", h.GetTestimonials)
	r.POST("/api/Testimonials", h.CreateTestimonial)
	r.PATCH("/api/Testimonials/:id/approve", h.ApproveTestimonial)
	return svc, r
}

func TestTestimonialHandler_Create_RatingBounds(t *testing.T) {
	for _, body := range []string{
		`{"clientName":"Maja","text":"Lovely","rating":0}`,
		`{"clientName":"Maja","text":"Lovely","rating":6}`,
		`{"clientName":"Maja","rating":4}`,
	} {
		svc, r := setupTestimonialRouter(t)

		w := doRequest(r, http.MethodPost, "/api/Testimonials", []byte(body))

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		svc.AssertNotCalled(t, "CreateTestimonial", mock.Anything, mock.Anything)
	}
}

func TestTestimonialHandler_List_ApprovedFilter(t *testing.T) {
	svc, r := setupTestimonialRouter(t)
	svc.On("GetTestimonials", mock.Anything, mock.MatchedBy(func(a *bool) bool { return a != nil && *a })).
		Return([]models.Testimonial{{ID: 1, IsApproved: true}}, nil)

	w := doRequest(r, http.MethodGet, "/api/Testimonials?approved=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	w = doRequest(r, http.MethodGet, "/api/Testimonials?approved=sometimes", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestimonialHandler_Approve_NotFound(t *testing.T) {
	svc, r := setupTestimonialRouter(t)
	svc.On("ApproveTestimonial", mock.Anything, int64(12)).Return(nil, services.ErrTestimonialNotFound)

	w := doRequest(r, http.MethodPatch, "/api/Testimonials/12/approve", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

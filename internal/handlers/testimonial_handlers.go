package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/services"
	"dance_site_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(s services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: s}
}

func respondTestimonialError(c *gin.Context, err error, op string) {
	if errors.Is(err, services.ErrTestimonialNotFound) {
		utils.RespondNotFound(c, "Testimonial not found.")
		return
	}
	respondInternal(c, err, op)
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req services.CreateTestimonialRequest
	if !bindJSON(c, &req, "CreateTestimonial") {
		return
	}

	t, err := h.testimonialService.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		respondTestimonialError(c, err, "CreateTestimonial: Error from testimonialService.CreateTestimonial")
		return
	}
	c.Header("Location", "/api/Testimonials/"+utils.Int64ToStr(t.ID))
	c.JSON(http.StatusCreated, t)
}

// GetTestimonials lists testimonials, optionally filtered by ?approved=true|false.
func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	var approved *bool
	if raw := c.Query("approved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid approved value.", err.Error()))
			return
		}
		approved = &v
	}

	testimonials, err := h.testimonialService.GetTestimonials(c.Request.Context(), approved)
	if err != nil {
		respondInternal(c, err, "GetTestimonials: Error from testimonialService.GetTestimonials")
		return
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) GetTestimonialByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "testimonial")
	if !ok {
		return
	}

	t, err := h.testimonialService.GetTestimonialByID(c.Request.Context(), id)
	if err != nil {
		respondTestimonialError(c, err, "GetTestimonialByID: Error from testimonialService.GetTestimonialByID")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) ApproveTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "testimonial")
	if !ok {
		return
	}

	t, err := h.testimonialService.ApproveTestimonial(c.Request.Context(), id)
	if err != nil {
		respondTestimonialError(c, err, "ApproveTestimonial: Error from testimonialService.ApproveTestimonial")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "testimonial")
	if !ok {
		return
	}

	if err := h.testimonialService.DeleteTestimonial(c.Request.Context(), id); err != nil {
		respondTestimonialError(c, err, "DeleteTestimonial: Error from testimonialService.DeleteTestimonial")
		return
	}
	c.Status(http.StatusNoContent)
}

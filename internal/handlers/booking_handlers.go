package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/services"
	"dance_site_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const dateOnlyLayout = "2006-01-02"

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// respondBookingError maps service errors to HTTP responses.
func respondBookingError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.RespondNotFound(c, "Booking not found.")
	case errors.Is(err, services.ErrBookingValidation):
		utils.LogWarn(err, op)
		utils.RespondValidationFailed(c, err.Error())
	case errors.Is(err, services.ErrBookingRuleViolation):
		utils.LogWarn(err, op)
		utils.RespondConflict(c, err.Error())
	default:
		respondInternal(c, err, op)
	}
}

// CreateBooking handles POST /api/Bookings. New bookings always start as Pending.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if !bindJSON(c, &req, "CreateBooking") {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err, "CreateBooking: Error from bookingService.CreateBooking")
		return
	}
	c.Header("Location", "/api/Bookings/"+utils.Int64ToStr(booking.ID))
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetBookings(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetBookings: Error from bookingService.GetBookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(c, err, "GetBookingByID: Error from bookingService.GetBookingByID")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// SearchBookings handles GET /api/Bookings/search.
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	filters, err := parseBookingFilters(c)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid search parameters.", err.Error()))
		return
	}

	bookings, err := h.bookingService.SearchBookings(c.Request.Context(), filters)
	if err != nil {
		respondInternal(c, err, "SearchBookings: Error from bookingService.SearchBookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	var req services.UpdateBookingRequest
	if !bindJSON(c, &req, "UpdateBooking") {
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), bookingID, req)
	if err != nil {
		respondBookingError(c, err, "UpdateBooking: Error from bookingService.UpdateBooking for ID "+utils.Int64ToStr(bookingID))
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		respondBookingError(c, err, "DeleteBooking: Error from bookingService.DeleteBooking")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseBookingFilters(c *gin.Context) (models.BookingFilters, error) {
	var filters models.BookingFilters

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseBookingStatus(raw)
		if err != nil {
			return filters, err
		}
		filters.Status = &status
	}
	if raw := c.Query("clientId"); raw != "" {
		id, err := utils.StrToInt64(raw)
		if err != nil {
			return filters, fmt.Errorf("clientId: %w", err)
		}
		filters.ClientID = &id
	}
	if raw := c.Query("serviceOfferingId"); raw != "" {
		id, err := utils.StrToInt64(raw)
		if err != nil {
			return filters, fmt.Errorf("serviceOfferingId: %w", err)
		}
		filters.ServiceOfferingID = &id
	}
	if raw := c.Query("fromDate"); raw != "" {
		from, err := parseSearchDate(raw, false)
		if err != nil {
			return filters, fmt.Errorf("fromDate: %w", err)
		}
		filters.FromDate = &from
	}
	if raw := c.Query("toDate"); raw != "" {
		to, err := parseSearchDate(raw, true)
		if err != nil {
			return filters, fmt.Errorf("toDate: %w", err)
		}
		filters.ToDate = &to
	}
	if filters.FromDate != nil && filters.ToDate != nil && filters.FromDate.After(*filters.ToDate) {
		return filters, errors.New("fromDate must not be after toDate")
	}

	filters.SortBy = models.ParseBookingSortKey(c.Query("sortBy"))
	if raw := c.Query("descending"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, fmt.Errorf("descending: %w", err)
		}
		filters.Descending = desc
	}
	return filters, nil
}

// parseSearchDate accepts RFC 3339 or YYYY-MM-DD. A date-only upper bound covers the whole day.
func parseSearchDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' is not an RFC 3339 timestamp or YYYY-MM-DD date", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

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

type ServiceOfferingHandler struct {
	offeringService services.ServiceOfferingService
}

func NewServiceOfferingHandler(s services.ServiceOfferingService) *ServiceOfferingHandler {
	return &ServiceOfferingHandler{offeringService: s}
}

func respondServiceOfferingError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrServiceOfferingNotFound):
		utils.RespondNotFound(c, "Service offering not found.")
	case errors.Is(err, services.ErrServiceOfferingValidation):
		utils.RespondValidationFailed(c, err.Error())
	default:
		respondInternal(c, err, op)
	}
}

func (h *ServiceOfferingHandler) CreateServiceOffering(c *gin.Context) {
	var req services.CreateServiceOfferingRequest
	if !bindJSON(c, &req, "CreateServiceOffering") {
		return
	}

	offering, err := h.offeringService.CreateServiceOffering(c.Request.Context(), req)
	if err != nil {
		respondServiceOfferingError(c, err, "CreateServiceOffering: Error from offeringService.CreateServiceOffering")
		return
	}
	c.Header("Location", "/api/ServiceOfferings/"+utils.Int64ToStr(offering.ID))
	c.JSON(http.StatusCreated, offering)
}

// GetServiceOfferings lists offerings; ?activeOnly=true hides retired ones.
func (h *ServiceOfferingHandler) GetServiceOfferings(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("activeOnly"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid activeOnly value.", err.Error()))
			return
		}
		activeOnly = v
	}

	offerings, err := h.offeringService.GetServiceOfferings(c.Request.Context(), activeOnly)
	if err != nil {
		respondInternal(c, err, "GetServiceOfferings: Error from offeringService.GetServiceOfferings")
		return
	}
	if offerings == nil {
		offerings = []models.ServiceOffering{}
	}
	c.JSON(http.StatusOK, offerings)
}

func (h *ServiceOfferingHandler) GetServiceOfferingByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "service offering")
	if !ok {
		return
	}

	offering, err := h.offeringService.GetServiceOfferingByID(c.Request.Context(), id)
	if err != nil {
		respondServiceOfferingError(c, err, "GetServiceOfferingByID: Error from offeringService.GetServiceOfferingByID")
		return
	}
	c.JSON(http.StatusOK, offering)
}

func (h *ServiceOfferingHandler) UpdateServiceOffering(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "service offering")
	if !ok {
		return
	}

	var req services.UpdateServiceOfferingRequest
	if !bindJSON(c, &req, "UpdateServiceOffering") {
		return
	}

	offering, err := h.offeringService.UpdateServiceOffering(c.Request.Context(), id, req)
	if err != nil {
		respondServiceOfferingError(c, err, "UpdateServiceOffering: Error from offeringService.UpdateServiceOffering")
		return
	}
	c.JSON(http.StatusOK, offering)
}

func (h *ServiceOfferingHandler) DeleteServiceOffering(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "service offering")
	if !ok {
		return
	}

	if err := h.offeringService.DeleteServiceOffering(c.Request.Context(), id); err != nil {
		respondServiceOfferingError(c, err, "DeleteServiceOffering: Error from offeringService.DeleteServiceOffering")
		return
	}
	c.Status(http.StatusNoContent)
}

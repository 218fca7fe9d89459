package handlers

import (
	"errors"
	"net/http"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/services"
	"dance_site_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

func respondClientError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrClientNotFound):
		utils.RespondNotFound(c, "Client not found.")
	case errors.Is(err, services.ErrEmailExists):
		utils.LogWarn(err, op)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already exists.", err.Error()))
	case errors.Is(err, services.ErrClientValidation):
		utils.RespondValidationFailed(c, err.Error())
	default:
		respondInternal(c, err, op)
	}
}

// CreateClient handles the creation of a new client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if !bindJSON(c, &req, "CreateClient") {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		respondClientError(c, err, "CreateClient: Error from clientService.CreateClient")
		return
	}
	c.Header("Location", "/api/Clients/"+utils.Int64ToStr(client.ID))
	c.JSON(http.StatusCreated, client)
}

// GetClients handles fetching all clients.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetClients(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetClients: Error from clientService.GetClients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientByID handles fetching a single client by ID.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id", "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondClientError(c, err, "GetClientByID: Error from clientService.GetClientByID")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient handles a partial update of a client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id", "client")
	if !ok {
		return
	}

	var req services.UpdateClientRequest
	if !bindJSON(c, &req, "UpdateClient") {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req)
	if err != nil {
		respondClientError(c, err, "UpdateClient: Error from clientService.UpdateClient for ID "+utils.Int64ToStr(clientID))
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient deletes a client and, by cascade, their bookings.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id", "client")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		respondClientError(c, err, "DeleteClient: Error from clientService.DeleteClient")
		return
	}
	c.Status(http.StatusNoContent)
}

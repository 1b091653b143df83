package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
)

// clientHandler handles HTTP requests related to customers.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// registerClientRoutes registers all customer routes.
func registerClientRoutes(rg *gin.RouterGroup, cs portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: cs}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a customer
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Customer details"
// @Success 201 {object} domain.Client
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.clientService.CreateClient(c.Request.Context(), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listClients godoc
// @Summary List customers
// @Tags clients
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Client
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	clients, err := h.clientService.ListClients(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// getClient godoc
// @Summary Get a customer by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// updateClient godoc
// @Summary Update a customer
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} domain.Client
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteClient godoc
// @Summary Delete a customer
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
)

// flowHandler handles HTTP requests related to approval flow templates.
type flowHandler struct {
	flowService portssvc.FlowSvcFacade
}

// registerFlowRoutes registers all flow template routes.
func registerFlowRoutes(rg *gin.RouterGroup, fs portssvc.FlowSvcFacade) {
	h := &flowHandler{flowService: fs}

	flows := rg.Group("/flows")
	{
		flows.POST("", h.createFlow)
		flows.GET("", h.listFlows)
		flows.GET("/:id", h.getFlow)
		flows.PUT("/:id", h.updateFlow)
		flows.DELETE("/:id", h.deleteFlow)
	}
}

// createFlow godoc
// @Summary Create an approval flow template
// @Tags flows
// @Accept json
// @Produce json
// @Param flow body dto.CreateFlowRequest true "Flow definition"
// @Success 201 {object} domain.ApproveFlow
// @Security BearerAuth
// @Router /flows [post]
func (h *flowHandler) createFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.flowService.CreateFlow(c.Request.Context(), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to create flow")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listFlows godoc
// @Summary List approval flow templates
// @Tags flows
// @Produce json
// @Success 200 {array} domain.ApproveFlow
// @Security BearerAuth
// @Router /flows [get]
func (h *flowHandler) listFlows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	flows, err := h.flowService.ListFlows(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list flows")
		return
	}
	c.JSON(http.StatusOK, flows)
}

// getFlow godoc
// @Summary Get a flow template by ID
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} domain.ApproveFlow
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /flows/{id} [get]
func (h *flowHandler) getFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	flow, err := h.flowService.GetFlow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve flow")
		return
	}
	c.JSON(http.StatusOK, flow)
}

// updateFlow godoc
// @Summary Update a flow template
// @Tags flows
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param flow body dto.UpdateFlowRequest true "Updated definition"
// @Success 200 {object} domain.ApproveFlow
// @Security BearerAuth
// @Router /flows/{id} [put]
func (h *flowHandler) updateFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.flowService.UpdateFlow(c.Request.Context(), c.Param("id"), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to update flow")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteFlow godoc
// @Summary Delete a flow template
// @Tags flows
// @Param id path string true "Flow ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /flows/{id} [delete]
func (h *flowHandler) deleteFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.flowService.DeleteFlow(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete flow")
		return
	}
	c.Status(http.StatusNoContent)
}

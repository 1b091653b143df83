package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
)

// approvalHandler handles HTTP requests related to approval hierarchies.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

// registerApprovalRoutes registers all approval-related routes.
func registerApprovalRoutes(rg *gin.RouterGroup, as portssvc.ApprovalSvcFacade) {
	h := &approvalHandler{approvalService: as}

	approvals := rg.Group("/approvals")
	{
		approvals.POST("", h.createApproval)
		approvals.GET("/:id", h.getApproval)
		approvals.GET("/:id/status", h.getApprovalStatus)
		approvals.PATCH("/:id/transition", h.transition)
	}
}

// createApproval godoc
// @Summary Create an approval hierarchy for a quotation
// @Description Builds the hierarchy from explicit steps or a flow template and moves the document to Pending
// @Tags approvals
// @Accept json
// @Produce json
// @Param approval body dto.CreateApprovalRequest true "Hierarchy definition"
// @Success 201 {object} domain.Approval
// @Failure 409 {object} map[string]string "Quotation already has a hierarchy"
// @Security BearerAuth
// @Router /approvals [post]
func (h *approvalHandler) createApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.approvalService.CreateApproval(c.Request.Context(), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to create approval hierarchy")
		return
	}

	logger.Info("Approval hierarchy created",
		slog.String("approval_id", created.ApprovalID), slog.String("quotation_id", created.QuotationID))
	c.JSON(http.StatusCreated, created)
}

// getApproval godoc
// @Summary Get an approval hierarchy by ID
// @Tags approvals
// @Produce json
// @Param id path string true "Approval ID"
// @Success 200 {object} domain.Approval
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /approvals/{id} [get]
func (h *approvalHandler) getApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hierarchy, err := h.approvalService.GetApproval(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve approval hierarchy")
		return
	}
	c.JSON(http.StatusOK, hierarchy)
}

// getApprovalStatus godoc
// @Summary Summarize a hierarchy's progress
// @Description Re-derives the current actionable level from step statuses
// @Tags approvals
// @Produce json
// @Param id path string true "Approval ID"
// @Success 200 {object} dto.ApprovalStatusResponse
// @Security BearerAuth
// @Router /approvals/{id}/status [get]
func (h *approvalHandler) getApprovalStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, err := h.approvalService.GetApprovalStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to derive approval status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// transition godoc
// @Summary Apply an approve/reject/cancel at one hierarchy step
// @Description Applies the step transition, derives the document-level outcome and dispatches notifications after commit
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param transition body dto.TransitionRequest true "Step transition"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} map[string]string "Actor may not act at this step"
// @Failure 404 {object} map[string]string "No such step"
// @Failure 409 {object} map[string]string "Document is not Pending"
// @Security BearerAuth
// @Router /approvals/{id}/transition [patch]
func (h *approvalHandler) transition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.approvalService.Transition(c.Request.Context(), c.Param("id"), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to apply transition")
		return
	}

	logger.Info("Transition applied",
		slog.String("approval_id", c.Param("id")),
		slog.Int("level", req.Level),
		slog.String("status", req.Status))
	c.JSON(http.StatusOK, resp)
}

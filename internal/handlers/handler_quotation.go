package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
)

// quotationHandler handles HTTP requests related to quotation documents.
type quotationHandler struct {
	quotationService portssvc.QuotationSvcFacade
	approvalService  portssvc.ApprovalSvcFacade
	logService       portssvc.LogSvcFacade
}

// registerQuotationRoutes registers all quotation-related routes.
func registerQuotationRoutes(rg *gin.RouterGroup, qs portssvc.QuotationSvcFacade, as portssvc.ApprovalSvcFacade, ls portssvc.LogSvcFacade) {
	h := &quotationHandler{quotationService: qs, approvalService: as, logService: ls}

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.createQuotation)
		quotations.GET("", h.listQuotations)
		quotations.GET("/:id", h.getQuotation)
		quotations.PUT("/:id", h.updateQuotation)
		quotations.DELETE("/:id", h.deleteQuotation)
		quotations.POST("/:id/duplicate", h.duplicateQuotation)
		quotations.PATCH("/:id/reason", h.updateReason)
		quotations.PATCH("/:id/unlock", h.unlockQuotation)
		quotations.PATCH("/:id/flow", h.updateFlow)
		quotations.GET("/:id/logs", h.listLogs)
		quotations.GET("/creator/:username", h.listByCreator)
		quotations.GET("/approver/:approver", h.listForApprover)
	}
}

// createQuotation godoc
// @Summary Create a quotation
// @Description Creates a quotation with recomputed totals and a freshly allocated run number; unless saved as draft the creator's approval flow is instantiated
// @Tags quotations
// @Accept json
// @Produce json
// @Param quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} domain.Quotation
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.quotationService.CreateQuotation(c.Request.Context(), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to create quotation")
		return
	}

	logger.Info("Quotation created", slog.String("quotation_id", created.QuotationID), slog.String("code", created.DocumentCode()))
	c.JSON(http.StatusCreated, created)
}

// listQuotations godoc
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.QuotationListResponse
// @Security BearerAuth
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.quotationService.ListQuotations(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list quotations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getQuotation godoc
// @Summary Get a quotation by ID
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} domain.Quotation
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /quotations/{id} [get]
func (h *quotationHandler) getQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quotation")
		return
	}
	c.JSON(http.StatusOK, quotation)
}

// updateQuotation godoc
// @Summary Update a quotation
// @Description Rewrites the document and recomputes totals; changing the document type reallocates the run number
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param quotation body dto.UpdateQuotationRequest true "Updated details"
// @Success 200 {object} domain.Quotation
// @Failure 409 {object} map[string]string "Document locked"
// @Security BearerAuth
// @Router /quotations/{id} [put]
func (h *quotationHandler) updateQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.quotationService.UpdateQuotation(c.Request.Context(), c.Param("id"), req, username)
	if err != nil {
		respondError(c, logger, err, "Failed to update quotation")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteQuotation godoc
// @Summary Delete a quotation
// @Description Hard-deletes the document and its hierarchy; the activity log survives
// @Tags quotations
// @Param id path string true "Quotation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /quotations/{id} [delete]
func (h *quotationHandler) deleteQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), c.Param("id"), username); err != nil {
		respondError(c, logger, err, "Failed to delete quotation")
		return
	}
	c.Status(http.StatusNoContent)
}

// duplicateQuotation godoc
// @Summary Duplicate a quotation
// @Description Clones the document under a fresh run number with an all-Pending copy of its hierarchy and no cancellation metadata
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 201 {object} domain.Quotation
// @Security BearerAuth
// @Router /quotations/{id}/duplicate [post]
func (h *quotationHandler) duplicateQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	clone, err := h.quotationService.DuplicateQuotation(c.Request.Context(), c.Param("id"), username)
	if err != nil {
		respondError(c, logger, err, "Failed to duplicate quotation")
		return
	}

	logger.Info("Quotation duplicated", slog.String("source_id", c.Param("id")), slog.String("clone_id", clone.QuotationID))
	c.JSON(http.StatusCreated, clone)
}

// updateReason godoc
// @Summary Set the reason on a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param reason body dto.UpdateReasonRequest true "Reason"
// @Success 200 {object} domain.Quotation
// @Security BearerAuth
// @Router /quotations/{id}/reason [patch]
func (h *quotationHandler) updateReason(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.quotationService.UpdateReason(c.Request.Context(), c.Param("id"), req.Reason, username)
	if err != nil {
		respondError(c, logger, err, "Failed to update reason")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// unlockQuotation godoc
// @Summary Unlock a resolved quotation
// @Description Returns a Canceled or Approved document to Pending with every hierarchy step reset
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} domain.Approval
// @Failure 409 {object} map[string]string "Document not resettable"
// @Security BearerAuth
// @Router /quotations/{id}/unlock [patch]
func (h *quotationHandler) unlockQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hierarchy, err := h.approvalService.ResetApproval(c.Request.Context(), c.Param("id"), username)
	if err != nil {
		respondError(c, logger, err, "Failed to unlock quotation")
		return
	}

	logger.Info("Quotation unlocked", slog.String("quotation_id", c.Param("id")))
	c.JSON(http.StatusOK, hierarchy)
}

// updateFlow godoc
// @Summary Replace a quotation's approval hierarchy from a flow template
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param flow body dto.UpdateQuotationFlowRequest true "Flow reference"
// @Success 200 {object} domain.Approval
// @Security BearerAuth
// @Router /quotations/{id}/flow [patch]
func (h *quotationHandler) updateFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateQuotationFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hierarchy, err := h.approvalService.UpdateQuotationFlow(c.Request.Context(), c.Param("id"), req.FlowID, username)
	if err != nil {
		respondError(c, logger, err, "Failed to update quotation flow")
		return
	}
	c.JSON(http.StatusOK, hierarchy)
}

// listLogs godoc
// @Summary List a quotation's activity log
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {array} domain.ActivityLog
// @Security BearerAuth
// @Router /quotations/{id}/logs [get]
func (h *quotationHandler) listLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logs, err := h.logService.ListByQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list activity logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// listByCreator godoc
// @Summary List quotations created by a user
// @Tags quotations
// @Produce json
// @Param username path string true "Creator username"
// @Success 200 {array} domain.Quotation
// @Security BearerAuth
// @Router /quotations/creator/{username} [get]
func (h *quotationHandler) listByCreator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotations, err := h.quotationService.ListQuotationsByCreator(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, logger, err, "Failed to list quotations")
		return
	}
	c.JSON(http.StatusOK, quotations)
}

// listForApprover godoc
// @Summary List quotations routed through an approver
// @Tags quotations
// @Produce json
// @Param approver path string true "Approver username"
// @Success 200 {array} domain.Quotation
// @Security BearerAuth
// @Router /quotations/approver/{approver} [get]
func (h *quotationHandler) listForApprover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotations, err := h.quotationService.ListQuotationsForApprover(c.Request.Context(), c.Param("approver"))
	if err != nil {
		respondError(c, logger, err, "Failed to list quotations")
		return
	}
	c.JSON(http.StatusOK, quotations)
}

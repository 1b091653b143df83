package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
)

// notificationHandler handles HTTP requests related to in-app notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// registerNotificationRoutes registers the notification inbox routes. All
// routes operate on the authenticated user's own notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: ns}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.countUnread)
		notifications.PATCH("/:id/read", h.markRead)
		notifications.PATCH("/read-all", h.markAllRead)
	}
}

// listNotifications godoc
// @Summary List the authenticated user's notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), username, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// countUnread godoc
// @Summary Count the authenticated user's unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) countUnread(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	count, err := h.notificationService.CountUnread(c.Request.Context(), username)
	if err != nil {
		respondError(c, logger, err, "Failed to count unread notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// markRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "Marked"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id"), username); err != nil {
		respondError(c, logger, err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}

// markAllRead godoc
// @Summary Mark all of the authenticated user's notifications as read
// @Tags notifications
// @Success 204 "Marked"
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), username); err != nil {
		respondError(c, logger, err, "Failed to mark notifications read")
		return
	}
	c.Status(http.StatusNoContent)
}

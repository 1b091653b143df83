package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
	"github.com/jakkitOptx/quotation-backend-neon/internal/platform/config"
)

// cronHandler handles scheduler callbacks.
type cronHandler struct {
	digestService portssvc.DigestSvcFacade
	cronSecret    string
}

// registerCronRoutes registers scheduler endpoints. They are guarded by a
// shared secret header instead of JWT because the caller is a scheduler, not
// a user.
func registerCronRoutes(r *gin.Engine, cfg *config.Config, ds portssvc.DigestSvcFacade) {
	h := &cronHandler{digestService: ds, cronSecret: cfg.CronSecret}

	cron := r.Group("/cron")
	{
		cron.POST("/daily-digest", h.dailyDigest)
	}
}

// dailyDigest godoc
// @Summary Send the daily pending-approval digest
// @Description Groups pending quotations by their current actionable approver and emails each one a summary
// @Tags cron
// @Produce json
// @Param X-Cron-Secret header string true "Shared scheduler secret"
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string "Bad or missing secret"
// @Router /cron/daily-digest [post]
func (h *cronHandler) dailyDigest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	secret := c.GetHeader("X-Cron-Secret")
	if h.cronSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.cronSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sent, err := h.digestService.SendDailyDigest(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to send daily digest")
		return
	}

	logger.Info("Daily digest sent", slog.Int("recipients", sent))
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

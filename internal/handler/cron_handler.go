package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tourbase/tourbase/internal/service"
	"github.com/tourbase/tourbase/pkg/logger"
	"github.com/tourbase/tourbase/pkg/response"
	"go.uber.org/zap"
)

// CronHandler serves scheduler-triggered maintenance endpoints. Callers
// authenticate with a shared bearer secret; an empty configured secret
// rejects every request.
type CronHandler struct {
	mailer service.MailerService
	secret string
	log    *logger.Logger
}

// NewCronHandler creates a new CronHandler
func NewCronHandler(mailer service.MailerService, secret string, log *logger.Logger) *CronHandler {
	return &CronHandler{
		mailer: mailer,
		secret: secret,
		log:    log.Named("cron"),
	}
}

// ProcessEmails drains the pending email queue
// GET /api/cron/emails
func (h *CronHandler) ProcessEmails(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid cron secret"))
		return
	}

	processed, err := h.mailer.ProcessPending(c.Request.Context())
	if err != nil {
		h.log.Error("email drain failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

// authorized checks the bearer token against the configured secret in
// constant time. Fails closed when no secret is configured.
func (h *CronHandler) authorized(c *gin.Context) bool {
	if h.secret == "" {
		return false
	}

	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return false
	}
	token := authHeader[len(bearerPrefix):]

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

package handler

import (
	"strconv"

	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookLogHandler serves the dashboard's audit log views.
type WebhookLogHandler struct {
	logSvc ports.WebhookLogService
	log    zerolog.Logger
}

func NewWebhookLogHandler(logSvc ports.WebhookLogService, log zerolog.Logger) *WebhookLogHandler {
	return &WebhookLogHandler{logSvc: logSvc, log: log}
}

// List returns audit entries, newest first, with optional filters.
//
//	GET /api/webhook-logs?path=&status=&limit=&offset=
func (h *WebhookLogHandler) List(c *gin.Context) {
	params := ports.WebhookLogListParams{
		WebhookPath: c.Query("path"),
		Limit:       ports.DefaultWebhookLogLimit,
	}

	if s := c.Query("status"); s != "" {
		status, err := strconv.Atoi(s)
		if err != nil {
			response.Error(c, apperror.Validation("status must be an integer"))
			return
		}
		params.StatusCode = &status
	}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			response.Error(c, apperror.Validation("limit must be an integer"))
			return
		}
		params.Limit = limit
	}
	if s := c.Query("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil {
			response.Error(c, apperror.Validation("offset must be an integer"))
			return
		}
		params.Offset = offset
	}

	logs, err := h.logSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, logs)
}

// ListPaths returns the distinct webhook paths present in the audit log, for
// the dashboard's filter dropdown.
//
//	GET /api/webhook-logs/paths
func (h *WebhookLogHandler) ListPaths(c *gin.Context) {
	paths, err := h.logSvc.ListPaths(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, paths)
}

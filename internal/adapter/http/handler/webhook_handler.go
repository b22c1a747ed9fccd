package handler

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"marketing-portal/config"
	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderWebhookSecret is the shared-secret header external form providers send.
const HeaderWebhookSecret = "x-webhook-secret"

// WebhookHandler serves one intake endpoint per configured source. Every call,
// whatever its outcome, produces exactly one audit log entry, written before
// the response goes out.
type WebhookHandler struct {
	ingestSvc ports.IngestService
	logSvc    ports.WebhookLogService
	source    config.WebhookSource
	log       zerolog.Logger
}

// NewWebhookHandler creates an intake handler bound to a single source.
func NewWebhookHandler(ingestSvc ports.IngestService, logSvc ports.WebhookLogService, source config.WebhookSource, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		ingestSvc: ingestSvc,
		logSvc:    logSvc,
		source:    source,
		log:       log.With().Str("webhook_path", source.Path).Logger(),
	}
}

// Handle processes a webhook lead submission.
//
//	POST /api/webhooks/<source path>
func (h *WebhookHandler) Handle(c *gin.Context) {
	// requestBody stays empty for outcomes reached before parsing.
	requestBody := map[string]interface{}{}

	if h.source.Secret != "" {
		provided := c.GetHeader(HeaderWebhookSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.source.Secret)) != 1 {
			h.respondError(c, requestBody, apperror.ErrUnauthorized(), "Invalid or missing x-webhook-secret")
			return
		}
	}

	contentType := c.GetHeader("Content-Type")

	var fields map[string]string
	switch {
	case strings.Contains(contentType, "application/json"):
		parsed, raw, err := parseJSONFields(c.Request.Body)
		if raw != nil {
			requestBody = raw
		}
		if err != nil {
			h.respondError(c, requestBody, apperror.ErrInvalidBody(err), err.Error())
			return
		}
		fields = parsed
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		parsed, err := parseFormFields(c.Request.Body)
		if err != nil {
			h.respondError(c, requestBody, apperror.ErrInvalidBody(err), err.Error())
			return
		}
		fields = parsed
		for k, v := range parsed {
			requestBody[k] = v
		}
	default:
		h.respondError(c, requestBody, apperror.ErrUnsupportedMediaType(), "Unsupported content type: "+contentType)
		return
	}

	input := domain.NormalizeWebhookPayload(fields)

	lead, err := h.ingestSvc.IngestLead(c.Request.Context(), h.source.Path, input)
	if err != nil {
		h.respondError(c, requestBody, err, errorMessage(err))
		return
	}

	h.record(c, http.StatusCreated, requestBody, gin.H{"success": true}, nil, &lead.ID)
	response.Success(c)
}

// parseJSONFields decodes a JSON object into string fields. Null values are
// dropped; any other non-string value rejects the payload. The raw decoded
// object is returned for the audit log even when coercion fails.
func parseJSONFields(body io.Reader) (map[string]string, map[string]interface{}, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading request body: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing JSON body: %w", err)
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case nil:
			// absent
		default:
			return nil, raw, fmt.Errorf("field %q is not a string", k)
		}
	}
	return fields, raw, nil
}

// parseFormFields decodes a URL-encoded form body, keeping the first value of
// each key.
func parseFormFields(body io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	values, err := url.ParseQuery(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing form body: %w", err)
	}

	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields, nil
}

// errorMessage extracts the client-facing message for the audit log.
func errorMessage(err error) string {
	_, body := response.ErrorBody(err)
	if msg, ok := body["error"].(string); ok {
		return msg
	}
	return err.Error()
}

func (h *WebhookHandler) respondError(c *gin.Context, requestBody map[string]interface{}, err error, errMsg string) {
	status, body := response.ErrorBody(err)
	h.record(c, status, requestBody, body, &errMsg, nil)
	c.JSON(status, body)
}

func (h *WebhookHandler) record(c *gin.Context, status int, requestBody map[string]interface{}, responseBody gin.H, errMsg *string, leadID *uuid.UUID) {
	h.logSvc.Record(c.Request.Context(), &domain.WebhookLog{
		WebhookPath:  h.source.Path,
		Method:       c.Request.Method,
		StatusCode:   status,
		RequestBody:  requestBody,
		ResponseBody: map[string]interface{}(responseBody),
		ErrorMessage: errMsg,
		LeadID:       leadID,
	})
}

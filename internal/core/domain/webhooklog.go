package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookLog is the audit record of one inbound webhook call. Exactly one row
// is written per invocation of a webhook endpoint, whatever the outcome.
// Rows are append-only; retention is an operational concern, not handled here.
type WebhookLog struct {
	ID           uuid.UUID              `json:"id"`
	WebhookPath  string                 `json:"webhook_path"`
	Method       string                 `json:"method"`
	StatusCode   int                    `json:"status_code"`
	RequestBody  map[string]interface{} `json:"request_body,omitempty"`
	ResponseBody map[string]interface{} `json:"response_body,omitempty"`
	ErrorMessage *string                `json:"error_message,omitempty"`
	// LeadID is a weak back-reference, populated only when a lead was
	// created during the logged call.
	LeadID    *uuid.UUID `json:"lead_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

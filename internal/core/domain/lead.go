package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// WebhookPathManual tags leads entered through the dashboard rather than
	// delivered by a webhook.
	WebhookPathManual = "manual"

	// PlaceholderFirstName is substituted when no first name can be
	// determined from the payload. A persisted lead never has an empty
	// first name.
	PlaceholderFirstName = "Unknown"
)

// Lead is a contact captured from any source. Rows are append-only: a lead is
// created exactly once per successful ingestion and never updated or deleted.
type Lead struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WebhookPath string    `json:"webhook_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// Source is a configured intake source shown on the dashboard.
type Source struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

package ports

import (
	"context"

	"marketing-portal/internal/core/domain"
)

// LeadRepository defines persistence operations for leads.
// Insert is not idempotent: repeated submissions with the same email create
// distinct rows. The store assigns the identifier and creation timestamp.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
}

// WebhookLogListParams holds filters + pagination for browsing webhook logs.
type WebhookLogListParams struct {
	WebhookPath string // empty = all paths
	StatusCode  *int   // nil = all statuses
	Limit       int    // capped at MaxWebhookLogLimit by the repository
	Offset      int
}

const (
	// DefaultWebhookLogLimit is used when no limit is requested.
	DefaultWebhookLogLimit = 50
	// MaxWebhookLogLimit caps a single page of webhook logs.
	MaxWebhookLogLimit = 100
)

// WebhookLogRepository defines persistence operations for webhook audit
// records. Rows are append-only.
type WebhookLogRepository interface {
	Insert(ctx context.Context, entry *domain.WebhookLog) error
	List(ctx context.Context, params WebhookLogListParams) ([]domain.WebhookLog, error)
	ListPaths(ctx context.Context) ([]string, error)
}

// SourceRepository lists the configured intake sources.
type SourceRepository interface {
	List(ctx context.Context) ([]domain.Source, error)
}

// UserRepository defines lookup operations for dashboard accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

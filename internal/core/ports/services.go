package ports

import (
	"context"
	"time"

	"marketing-portal/internal/core/domain"

	"github.com/google/uuid"
)

// IngestService persists a normalized webhook payload as a lead.
type IngestService interface {
	// IngestLead resolves the canonical lead shape, validates that an email
	// is present, and inserts the lead tagged with the originating webhook
	// path. Returns apperror.ErrEmailRequired or apperror.ErrStorage on
	// failure; performs no deduplication.
	IngestLead(ctx context.Context, webhookPath string, in domain.WebhookLeadInput) (*domain.Lead, error)
}

// WebhookLogService records and queries webhook audit entries.
type WebhookLogService interface {
	// Record writes one audit entry. It is best-effort: a failed write is
	// logged and swallowed so it can never change the outcome of the call
	// being audited. The write is attempted before Record returns.
	Record(ctx context.Context, entry *domain.WebhookLog)
	List(ctx context.Context, params WebhookLogListParams) ([]domain.WebhookLog, error)
	ListPaths(ctx context.Context) ([]string, error)
}

// ManualLeadInput holds dashboard-entered lead fields.
type ManualLeadInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// LeadService defines dashboard lead operations.
type LeadService interface {
	List(ctx context.Context) ([]domain.Lead, error)
	// CreateManual inserts a lead with webhook_path "manual". First name,
	// last name and email are required.
	CreateManual(ctx context.Context, in ManualLeadInput) (*domain.Lead, error)
}

// AuthService defines dashboard authentication.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry, error
}

// TokenService handles JWT token operations for dashboard sessions.
type TokenService interface {
	Generate(userID uuid.UUID, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// WebCallSession is a short-lived third-party voice session. The access token
// expires seconds after creation; the call must start within that window.
type WebCallSession struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
	AgentName   string `json:"agent_name"`
}

// VoiceService proxies creation of voice-agent web call sessions.
type VoiceService interface {
	CreateWebCall(ctx context.Context) (*WebCallSession, error)
}

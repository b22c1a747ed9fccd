package service

import (
	"context"

	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports"

	"github.com/rs/zerolog"
)

// WebhookLogServiceImpl implements ports.WebhookLogService.
type WebhookLogServiceImpl struct {
	repo ports.WebhookLogRepository
	log  zerolog.Logger
}

// NewWebhookLogService creates a new webhook audit log service.
func NewWebhookLogService(repo ports.WebhookLogRepository, log zerolog.Logger) *WebhookLogServiceImpl {
	return &WebhookLogServiceImpl{repo: repo, log: log}
}

// Record writes one audit entry, synchronously so the write is attempted
// before the HTTP response goes out. A failed write is logged and swallowed:
// audit logging is best-effort and never changes the outcome of the call
// being audited.
func (s *WebhookLogServiceImpl) Record(ctx context.Context, entry *domain.WebhookLog) {
	s.log.Info().
		Str("webhook_path", entry.WebhookPath).
		Str("method", entry.Method).
		Int("status_code", entry.StatusCode).
		Msg("webhook call")

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Warn().Err(err).
			Str("webhook_path", entry.WebhookPath).
			Msg("failed to persist webhook log")
	}
}

// List returns audit entries matching the given filters, newest first.
func (s *WebhookLogServiceImpl) List(ctx context.Context, params ports.WebhookLogListParams) ([]domain.WebhookLog, error) {
	return s.repo.List(ctx, params)
}

// ListPaths returns the distinct webhook paths present in the audit log.
func (s *WebhookLogServiceImpl) ListPaths(ctx context.Context) ([]string, error) {
	return s.repo.ListPaths(ctx)
}

package service

import (
	"context"

	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
)

// IngestServiceImpl implements ports.IngestService.
type IngestServiceImpl struct {
	leadRepo ports.LeadRepository
}

// NewIngestService creates a new IngestServiceImpl.
func NewIngestService(leadRepo ports.LeadRepository) *IngestServiceImpl {
	return &IngestServiceImpl{leadRepo: leadRepo}
}

// IngestLead persists a normalized webhook payload as a lead tagged with its
// originating path. Email presence is the single validation; the store's
// error message is surfaced verbatim on write failure. No deduplication:
// repeated submissions create distinct leads.
func (s *IngestServiceImpl) IngestLead(ctx context.Context, webhookPath string, in domain.WebhookLeadInput) (*domain.Lead, error) {
	fields := in.Resolve()
	if fields.Email == "" {
		return nil, apperror.ErrEmailRequired()
	}

	lead := &domain.Lead{
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Email:       fields.Email,
		Phone:       fields.Phone,
		WebhookPath: webhookPath,
	}

	if err := s.leadRepo.Insert(ctx, lead); err != nil {
		return nil, apperror.ErrStorage(err)
	}
	return lead, nil
}

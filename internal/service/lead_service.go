package service

import (
	"context"
	"strings"

	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
)

// LeadServiceImpl implements ports.LeadService.
type LeadServiceImpl struct {
	leadRepo ports.LeadRepository
}

// NewLeadService creates a new LeadServiceImpl.
func NewLeadService(leadRepo ports.LeadRepository) *LeadServiceImpl {
	return &LeadServiceImpl{leadRepo: leadRepo}
}

// List returns all leads, newest first.
func (s *LeadServiceImpl) List(ctx context.Context) ([]domain.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	return leads, nil
}

// CreateManual inserts a dashboard-entered lead. Unlike webhook ingestion,
// manual entry requires first name and last name as well as email.
func (s *LeadServiceImpl) CreateManual(ctx context.Context, in ports.ManualLeadInput) (*domain.Lead, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)

	if firstName == "" || lastName == "" || email == "" {
		return nil, apperror.Validation("First name, last name, and email are required.")
	}

	lead := &domain.Lead{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		WebhookPath: domain.WebhookPathManual,
	}

	if err := s.leadRepo.Insert(ctx, lead); err != nil {
		return nil, apperror.ErrStorage(err)
	}
	return lead, nil
}

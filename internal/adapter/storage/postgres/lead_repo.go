package postgres

import (
	"context"
	"fmt"

	"marketing-portal/internal/core/domain"
)

// LeadRepo implements ports.LeadRepository.
type LeadRepo struct {
	pool Pool
}

// NewLeadRepo creates a new LeadRepo.
func NewLeadRepo(pool Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

// Insert writes a new lead row. The database assigns the identifier and
// creation timestamp, which are scanned back into the lead. There is no
// conflict handling: identical submissions create distinct rows.
func (r *LeadRepo) Insert(ctx context.Context, lead *domain.Lead) error {
	query := `INSERT INTO leads (first_name, last_name, email, phone, webhook_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		lead.FirstName, lead.LastName, lead.Email, lead.Phone, lead.WebhookPath,
	).Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// List returns all leads, newest first.
func (r *LeadRepo) List(ctx context.Context) ([]domain.Lead, error) {
	query := `SELECT id, first_name, last_name, email, phone, webhook_path, created_at
		FROM leads
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(
			&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone,
			&l.WebhookPath, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

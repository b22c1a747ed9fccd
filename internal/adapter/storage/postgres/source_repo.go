package postgres

import (
	"context"
	"fmt"

	"marketing-portal/internal/core/domain"
)

// SourceRepo implements ports.SourceRepository.
type SourceRepo struct {
	pool Pool
}

// NewSourceRepo creates a new SourceRepo.
func NewSourceRepo(pool Pool) *SourceRepo {
	return &SourceRepo{pool: pool}
}

// List returns all configured intake sources.
func (r *SourceRepo) List(ctx context.Context) ([]domain.Source, error) {
	query := `SELECT id, name, slug, created_at FROM sources ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.Source
	for rows.Next() {
		var s domain.Source
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

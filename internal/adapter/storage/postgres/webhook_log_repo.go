package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports"
)

// WebhookLogRepo implements ports.WebhookLogRepository.
type WebhookLogRepo struct {
	pool Pool
}

// NewWebhookLogRepo creates a new WebhookLogRepo.
func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

// Insert writes one audit row. Request and response bodies are stored as
// jsonb; the database assigns the identifier and creation timestamp.
func (r *WebhookLogRepo) Insert(ctx context.Context, entry *domain.WebhookLog) error {
	requestJSON, err := marshalBody(entry.RequestBody)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	responseJSON, err := marshalBody(entry.ResponseBody)
	if err != nil {
		return fmt.Errorf("marshal response body: %w", err)
	}

	query := `INSERT INTO webhook_logs (webhook_path, method, status_code, request_body, response_body, error_message, lead_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err = r.pool.QueryRow(ctx, query,
		entry.WebhookPath, entry.Method, entry.StatusCode,
		requestJSON, responseJSON, entry.ErrorMessage, entry.LeadID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// List returns audit rows newest first, filtered by path and status when set.
// The limit is clamped to [1, MaxWebhookLogLimit], defaulting to
// DefaultWebhookLogLimit.
func (r *WebhookLogRepo) List(ctx context.Context, params ports.WebhookLogListParams) ([]domain.WebhookLog, error) {
	query := `SELECT id, webhook_path, method, status_code, request_body, response_body, error_message, lead_id, created_at
		FROM webhook_logs`

	var (
		conds []string
		args  []any
	)
	if params.WebhookPath != "" {
		args = append(args, params.WebhookPath)
		conds = append(conds, fmt.Sprintf("webhook_path = $%d", len(args)))
	}
	if params.StatusCode != nil {
		args = append(args, *params.StatusCode)
		conds = append(conds, fmt.Sprintf("status_code = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = ports.DefaultWebhookLogLimit
	}
	if limit > ports.MaxWebhookLogLimit {
		limit = ports.MaxWebhookLogLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list webhook logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.WebhookLog
	for rows.Next() {
		var (
			e            domain.WebhookLog
			requestJSON  []byte
			responseJSON []byte
		)
		if err := rows.Scan(
			&e.ID, &e.WebhookPath, &e.Method, &e.StatusCode,
			&requestJSON, &responseJSON, &e.ErrorMessage, &e.LeadID,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook log: %w", err)
		}
		if e.RequestBody, err = unmarshalBody(requestJSON); err != nil {
			return nil, fmt.Errorf("unmarshal request body: %w", err)
		}
		if e.ResponseBody, err = unmarshalBody(responseJSON); err != nil {
			return nil, fmt.Errorf("unmarshal response body: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListPaths returns the distinct webhook paths seen in the audit log.
func (r *WebhookLogRepo) ListPaths(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT webhook_path FROM webhook_logs ORDER BY webhook_path`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list webhook paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan webhook path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func marshalBody(body map[string]interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	return json.Marshal(body)
}

func unmarshalBody(data []byte) (map[string]interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	return body, nil
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo persistencia del log de actividad sobre PostgreSQL.
// La tabla es append-only: este adaptador no expone update ni delete.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta una entrada de auditoría. Details se guarda como jsonb.
func (r *ActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	details, err := json.Marshal(log.Details)
	if err != nil {
		return fmt.Errorf("marshal log details: %w", err)
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO activity_logs (created_at, action_type, description, user_id, username, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		log.CreatedAt, log.ActionType, log.Description, log.UserID, log.Username, details,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas entradas, de la más nueva a la más vieja.
func (r *ActivityLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, created_at, action_type, description, user_id, username, details
		FROM activity_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	defer rows.Close()
	return scanActivityLogs(rows)
}

// ListByTypeBetween devuelve las entradas de un tipo en [from, to], ascendente.
func (r *ActivityLogRepo) ListByTypeBetween(ctx context.Context, actionType string, from, to time.Time) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, created_at, action_type, description, user_id, username, details
		FROM activity_logs
		WHERE action_type = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, actionType, from, to)
	if err != nil {
		return nil, fmt.Errorf("list activity by type: %w", err)
	}
	defer rows.Close()
	return scanActivityLogs(rows)
}

func scanActivityLogs(rows pgx.Rows) ([]*entity.ActivityLog, error) {
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		var details []byte
		if err := rows.Scan(&l.ID, &l.CreatedAt, &l.ActionType, &l.Description, &l.UserID, &l.Username, &details); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &l.Details); err != nil {
				return nil, fmt.Errorf("unmarshal log details: %w", err)
			}
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

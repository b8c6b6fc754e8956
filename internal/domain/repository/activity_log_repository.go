package repository

import (
	"context"
	"time"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

// ActivityLogRepository define el puerto de persistencia del log de
// auditoría. Append-only: no existe update ni delete.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	// ListRecent devuelve las últimas entradas, de la más nueva a la más vieja.
	ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
	// ListByTypeBetween devuelve las entradas de un tipo de acción en un rango
	// de tiempo [from, to], de la más vieja a la más nueva (reportes diarios).
	ListByTypeBetween(ctx context.Context, actionType string, from, to time.Time) ([]*entity.ActivityLog, error)
}

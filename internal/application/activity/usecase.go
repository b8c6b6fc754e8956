package activity

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
)

// Límite por defecto y máximo de entradas para el listado de actividad.
const (
	defaultLimit = 20
	maxLimit     = 100
)

// UseCase expone la lectura del log de actividad para la UI y el notificador.
type UseCase struct {
	logs repository.ActivityLogRepository
}

// NewUseCase construye el caso de uso de consulta de actividad.
func NewUseCase(logs repository.ActivityLogRepository) *UseCase {
	return &UseCase{logs: logs}
}

// ListRecent devuelve las últimas entradas del log, de la más nueva a la más
// vieja. limit <= 0 usa el default; se recorta al máximo permitido.
func (uc *UseCase) ListRecent(ctx context.Context, limit int) ([]dto.ActivityLogDTO, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	entries, err := uc.logs.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityLogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityLogDTO{
			ID:                e.ID,
			CreatedAt:         e.CreatedAt,
			ActionType:        e.ActionType,
			Description:       e.Description,
			Username:          e.Username,
			SaleSummary:       e.Details.SaleSummary,
			ProductionSummary: e.Details.ProductionSummary,
			ImpactSummary:     e.Details.ImpactSummary,
		})
	}
	return out, nil
}

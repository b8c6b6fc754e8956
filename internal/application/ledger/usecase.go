package ledger

import (
	"context"
	"time"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/dendyelo/nooda-inventory/pkg/logger"
)

// UseCase es el motor de ledger: orquesta producciones, ventas y ajustes
// manuales de stock. Resuelve recetas vía RecipeResolver, valida stock
// disponible, aplica todos los deltas dentro de una transacción (todo-o-nada)
// y registra una entrada de auditoría por mutación completada.
type UseCase struct {
	txRunner   TxRunner
	products   repository.ProductRepository
	components repository.ComponentRepository
	resolver   *RecipeResolver
	logs       repository.ActivityLogRepository
	log        *logger.Logger
}

// NewUseCase construye el motor de ledger.
func NewUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	components repository.ComponentRepository,
	resolver *RecipeResolver,
	logs repository.ActivityLogRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		products:   products,
		components: components,
		resolver:   resolver,
		logs:       logs,
		log:        log,
	}
}

// writeLog registra la entrada de auditoría de una mutación ya aplicada.
// Es best-effort: si el insert falla, la mutación NO se revierte; se deja
// una advertencia en el log operacional para seguimiento fuera de banda.
func (uc *UseCase) writeLog(ctx context.Context, actor entity.Actor, actionType, description string, details entity.ActivityDetails) {
	logEntry := &entity.ActivityLog{
		CreatedAt:   time.Now(),
		ActionType:  actionType,
		Description: description,
		Details:     details,
	}
	if actor.ID != "" {
		logEntry.UserID = &actor.ID
		logEntry.Username = &actor.Username
	}
	if err := uc.logs.Create(ctx, logEntry); err != nil {
		uc.log.Warn().
			Err(err).
			Str("action_type", actionType).
			Str("transaction_id", details.TransactionID).
			Msg("mutación aplicada pero falló la escritura del log de actividad")
	}
}

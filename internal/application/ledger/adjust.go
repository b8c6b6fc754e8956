package ledger

import (
	"context"
	"fmt"

	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/google/uuid"
)

// Direcciones de un ajuste manual de stock.
const (
	AdjustDirectionAdd      = "add"
	AdjustDirectionSubtract = "subtract"
)

// AdjustInput entrada de un ajuste manual de stock de un componente.
type AdjustInput struct {
	ComponentID int64
	Direction   string // add | subtract
	Amount      int64  // siempre positivo
}

// AdjustResult resultado de un ajuste manual aplicado.
type AdjustResult struct {
	Description string
	NewStock    int64
}

// AdjustStock aplica un ajuste manual sin receta de por medio. Comparte el
// mismo invariante de stock no negativo y el mismo contrato de apply atómico
// que las mutaciones del ledger, y registra la entrada STOCK_ADJUSTMENT con
// la identidad del actor y el antes/después.
func (uc *UseCase) AdjustStock(ctx context.Context, actor entity.Actor, in AdjustInput) (*AdjustResult, error) {
	if in.ComponentID <= 0 || in.Amount <= 0 {
		return nil, fmt.Errorf("%w: component id y monto deben ser positivos", domain.ErrInvalidInput)
	}
	if in.Direction != AdjustDirectionAdd && in.Direction != AdjustDirectionSubtract {
		return nil, fmt.Errorf("%w: dirección debe ser add o subtract", domain.ErrInvalidInput)
	}

	comp, err := uc.components.GetByID(ctx, in.ComponentID)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return nil, fmt.Errorf("componente %d: %w", in.ComponentID, domain.ErrNotFound)
	}

	delta := in.Amount
	if in.Direction == AdjustDirectionSubtract {
		if comp.Stock < in.Amount {
			return nil, &domain.InsufficientStockError{
				Components: []domain.StockShortfall{{
					Name:      comp.Name,
					Required:  in.Amount,
					Available: comp.Stock,
				}},
			}
		}
		delta = -in.Amount
	}

	var newStock int64
	err = uc.txRunner.Run(ctx, func(
		componentRepo repository.ComponentRepository,
		_ repository.ProductRepository,
	) error {
		ns, err := componentRepo.ApplyDelta(ctx, in.ComponentID, delta)
		if err != nil {
			return asApplyError(err, comp.Name)
		}
		newStock = ns
		return nil
	})
	if err != nil {
		return nil, err
	}

	before := newStock - delta
	description := fmt.Sprintf("Stock of %s adjusted from %d %s to %d %s",
		comp.Name, before, comp.Unit, newStock, comp.Unit)

	txID := uuid.New().String()
	uc.writeLog(ctx, actor, entity.ActionTypeSTOCKADJUSTMENT, description, entity.ActivityDetails{
		TransactionID: txID,
		ImpactSummary: []string{impactLine(comp.Name, before, newStock)},
	})
	return &AdjustResult{Description: description, NewStock: newStock}, nil
}

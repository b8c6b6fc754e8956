package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/google/uuid"
)

// ProduceInput entrada de una corrida de producción.
type ProduceInput struct {
	ProductID int64
	Quantity  int64
}

// ProductionResult resumen de impacto de una producción (aplicada o preview).
type ProductionResult struct {
	Description       string
	ProductionSummary []string
	ImpactSummary     []string
}

// componentConsumption consumo total de un componente dentro de una operación.
type componentConsumption struct {
	component *entity.Component
	needed    int64
}

// productionPlan resultado de la fase de validación: deltas a aplicar y
// resúmenes ya construidos. Preview y apply comparten este plan para que lo
// mostrado y lo aplicado no puedan divergir.
type productionPlan struct {
	product      *entity.Product
	quantity     int64
	consumptions []componentConsumption
	result       *ProductionResult
}

// buildProductionPlan valida la entrada, resuelve la receta PRODUCTION,
// lee el stock de todos los ingredientes en batch y acumula TODOS los
// faltantes antes de fallar. No toca storage si la entrada es inválida.
func (uc *UseCase) buildProductionPlan(ctx context.Context, in ProduceInput) (*productionPlan, error) {
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: product id y cantidad deben ser positivos", domain.ErrInvalidInput)
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}

	recipe, err := uc.resolver.Resolve(ctx, in.ProductID, entity.ProcessTypePRODUCTION)
	if err != nil {
		return nil, err
	}
	if len(recipe) == 0 {
		return nil, fmt.Errorf("producción de %s: %w", product.Name, domain.ErrNoRecipe)
	}

	ids := make([]int64, len(recipe))
	for i, line := range recipe {
		ids[i] = line.ComponentID
	}
	components, err := uc.components.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	var shortfalls []domain.StockShortfall
	consumptions := make([]componentConsumption, 0, len(recipe))
	for _, line := range recipe {
		comp, ok := byID[line.ComponentID]
		if !ok {
			return nil, fmt.Errorf("componente %d: %w", line.ComponentID, domain.ErrNotFound)
		}
		needed := line.QuantityPerUnit * in.Quantity
		if comp.Stock < needed {
			shortfalls = append(shortfalls, domain.StockShortfall{
				Name:      comp.Name,
				Required:  needed,
				Available: comp.Stock,
			})
		}
		consumptions = append(consumptions, componentConsumption{component: comp, needed: needed})
	}
	if len(shortfalls) > 0 {
		return nil, &domain.InsufficientStockError{Components: shortfalls}
	}

	// Resumen de impacto: ingredientes en orden de receta, luego el producto.
	impact := make([]string, 0, len(consumptions)+1)
	for _, c := range consumptions {
		impact = append(impact, impactLine(c.component.Name, c.component.Stock, c.component.Stock-c.needed))
	}
	impact = append(impact, impactLine(product.Name, product.Stock, product.Stock+in.Quantity))

	return &productionPlan{
		product:      product,
		quantity:     in.Quantity,
		consumptions: consumptions,
		result: &ProductionResult{
			Description:       fmt.Sprintf("Produced %dx %s", in.Quantity, product.Name),
			ProductionSummary: []string{fmt.Sprintf("%dx %s", in.Quantity, product.Name)},
			ImpactSummary:     impact,
		},
	}, nil
}

// PreviewProduce calcula los resúmenes de una producción SIN aplicar ninguna
// mutación, con la misma resolución de receta y validación que Produce.
func (uc *UseCase) PreviewProduce(ctx context.Context, in ProduceInput) (*ProductionResult, error) {
	plan, err := uc.buildProductionPlan(ctx, in)
	if err != nil {
		return nil, err
	}
	return plan.result, nil
}

// Produce ejecuta una corrida de producción: descuenta cada ingrediente según
// la receta PRODUCTION y suma la cantidad producida al producto, todo dentro
// de una sola transacción. Tras el commit registra la entrada de auditoría.
func (uc *UseCase) Produce(ctx context.Context, actor entity.Actor, in ProduceInput) (*ProductionResult, error) {
	plan, err := uc.buildProductionPlan(ctx, in)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		componentRepo repository.ComponentRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, c := range plan.consumptions {
			if _, err := componentRepo.ApplyDelta(ctx, c.component.ID, -c.needed); err != nil {
				return asApplyError(err, c.component.Name)
			}
		}
		if _, err := productRepo.ApplyDelta(ctx, plan.product.ID, plan.quantity); err != nil {
			return asApplyError(err, plan.product.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	txID := uuid.New().String()
	uc.writeLog(ctx, actor, entity.ActionTypePRODUCTION, plan.result.Description, entity.ActivityDetails{
		TransactionID:     txID,
		ProductionSummary: plan.result.ProductionSummary,
		ImpactSummary:     plan.result.ImpactSummary,
	})
	return plan.result, nil
}

// impactLine formatea una línea "nombre: antes -> después".
func impactLine(name string, before, after int64) string {
	return fmt.Sprintf("%s: %d -> %d", name, before, after)
}

// asApplyError traduce un rechazo del write condicional en pleno apply.
// La validación optimista ya pasó, así que un faltante aquí significa que una
// operación concurrente se adelantó: la transacción completa se revierte y la
// operación se reporta como conflicto, nunca se deja aplicación parcial.
func asApplyError(err error, name string) error {
	if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("stock de %s cambió durante la operación: %w", name, domain.ErrConflict)
	}
	return err
}

package ledger

import (
	"context"
	"fmt"

	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/google/uuid"
)

// SaleItem una línea del carrito: producto y cantidad a vender.
type SaleItem struct {
	ProductID int64
	Quantity  int64
}

// SellInput entrada de una transacción de venta.
type SellInput struct {
	Items []SaleItem
}

// SaleResult resúmenes de una venta (aplicada o preview).
type SaleResult struct {
	Description   string
	SaleSummary   []string
	ImpactSummary []string
}

// saleLine línea del carrito ya agregada por producto.
type saleLine struct {
	product  *entity.Product
	quantity int64
}

// salePlan deltas y resúmenes de una venta validada.
type salePlan struct {
	lines        []saleLine
	consumptions []componentConsumption
	totalQty     int64
	result       *SaleResult
}

// buildSalePlan valida el carrito y agrega los requerimientos de ingredientes
// A TRAVÉS de todo el carrito: si dos productos comparten un ingrediente, sus
// consumos se suman en un solo total ANTES de validar y aplicar. Validar por
// item contra una cifra de stock repetida daría falsos positivos/negativos.
// Acumula todos los faltantes (productos e ingredientes) en vez de cortar al
// primero.
func (uc *UseCase) buildSalePlan(ctx context.Context, in SellInput) (*salePlan, error) {
	// Filtrar cantidades cero antes de procesar; negativos son entrada inválida.
	items := make([]SaleItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity < 0 || item.ProductID <= 0 {
			return nil, fmt.Errorf("%w: item de venta con producto o cantidad inválida", domain.ErrInvalidInput)
		}
		if item.Quantity == 0 {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no hay items para vender", domain.ErrInvalidInput)
	}

	// Agregar cantidades por producto conservando orden de primera aparición.
	productOrder := make([]int64, 0, len(items))
	qtyByProduct := make(map[int64]int64, len(items))
	for _, item := range items {
		if _, ok := qtyByProduct[item.ProductID]; !ok {
			productOrder = append(productOrder, item.ProductID)
		}
		qtyByProduct[item.ProductID] += item.Quantity
	}

	products, err := uc.products.ListByIDs(ctx, productOrder)
	if err != nil {
		return nil, err
	}
	productByID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	var productShortfalls []domain.StockShortfall
	lines := make([]saleLine, 0, len(productOrder))
	var totalQty int64
	for _, id := range productOrder {
		p, ok := productByID[id]
		if !ok {
			return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
		}
		qty := qtyByProduct[id]
		if p.Stock < qty {
			productShortfalls = append(productShortfalls, domain.StockShortfall{
				Name:      p.Name,
				Required:  qty,
				Available: p.Stock,
			})
		}
		lines = append(lines, saleLine{product: p, quantity: qty})
		totalQty += qty
	}

	// Receta SALE de cada producto (empaques y consumibles), agregada en un
	// mapa por componente para que la supresión de duplicados sea estructural.
	componentOrder := make([]int64, 0)
	requiredByComponent := make(map[int64]int64)
	for _, line := range lines {
		recipe, err := uc.resolver.Resolve(ctx, line.product.ID, entity.ProcessTypeSALE)
		if err != nil {
			return nil, err
		}
		for _, rl := range recipe {
			if _, ok := requiredByComponent[rl.ComponentID]; !ok {
				componentOrder = append(componentOrder, rl.ComponentID)
			}
			requiredByComponent[rl.ComponentID] += rl.QuantityPerUnit * line.quantity
		}
	}

	var componentShortfalls []domain.StockShortfall
	consumptions := make([]componentConsumption, 0, len(componentOrder))
	if len(componentOrder) > 0 {
		components, err := uc.components.ListByIDs(ctx, componentOrder)
		if err != nil {
			return nil, err
		}
		componentByID := make(map[int64]*entity.Component, len(components))
		for _, c := range components {
			componentByID[c.ID] = c
		}
		for _, id := range componentOrder {
			comp, ok := componentByID[id]
			if !ok {
				return nil, fmt.Errorf("componente %d: %w", id, domain.ErrNotFound)
			}
			needed := requiredByComponent[id]
			if comp.Stock < needed {
				componentShortfalls = append(componentShortfalls, domain.StockShortfall{
					Name:      comp.Name,
					Required:  needed,
					Available: comp.Stock,
				})
			}
			consumptions = append(consumptions, componentConsumption{component: comp, needed: needed})
		}
	}

	if len(productShortfalls) > 0 || len(componentShortfalls) > 0 {
		return nil, &domain.InsufficientStockError{
			Products:   productShortfalls,
			Components: componentShortfalls,
		}
	}

	// Resúmenes: una línea "Nx producto" por línea del carrito y el impacto
	// "nombre: antes -> después" con productos primero, luego ingredientes.
	saleSummary := make([]string, 0, len(lines))
	impact := make([]string, 0, len(lines)+len(consumptions))
	for _, line := range lines {
		saleSummary = append(saleSummary, fmt.Sprintf("%dx %s", line.quantity, line.product.Name))
		impact = append(impact, impactLine(line.product.Name, line.product.Stock, line.product.Stock-line.quantity))
	}
	for _, c := range consumptions {
		impact = append(impact, impactLine(c.component.Name, c.component.Stock, c.component.Stock-c.needed))
	}

	return &salePlan{
		lines:        lines,
		consumptions: consumptions,
		totalQty:     totalQty,
		result: &SaleResult{
			Description:   fmt.Sprintf("Sold %d items", totalQty),
			SaleSummary:   saleSummary,
			ImpactSummary: impact,
		},
	}, nil
}

// PreviewSell calcula los resúmenes de una venta SIN aplicar mutaciones,
// con la misma agregación de carrito que Sell.
func (uc *UseCase) PreviewSell(ctx context.Context, in SellInput) (*SaleResult, error) {
	plan, err := uc.buildSalePlan(ctx, in)
	if err != nil {
		return nil, err
	}
	return plan.result, nil
}

// Sell registra una venta: descuenta cada producto vendido y cada ingrediente
// de empaque agregado, como una sola unidad lógica dentro de una transacción.
func (uc *UseCase) Sell(ctx context.Context, actor entity.Actor, in SellInput) (*SaleResult, error) {
	plan, err := uc.buildSalePlan(ctx, in)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		componentRepo repository.ComponentRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, line := range plan.lines {
			if _, err := productRepo.ApplyDelta(ctx, line.product.ID, -line.quantity); err != nil {
				return asApplyError(err, line.product.Name)
			}
		}
		for _, c := range plan.consumptions {
			if _, err := componentRepo.ApplyDelta(ctx, c.component.ID, -c.needed); err != nil {
				return asApplyError(err, c.component.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	txID := uuid.New().String()
	uc.writeLog(ctx, actor, entity.ActionTypeSALE, plan.result.Description, entity.ActivityDetails{
		TransactionID: txID,
		SaleSummary:   plan.result.SaleSummary,
		ImpactSummary: plan.result.ImpactSummary,
	})
	return plan.result, nil
}

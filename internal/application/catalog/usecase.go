package catalog

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
)

// UseCase expone los listados de catálogo (productos y componentes) para la UI.
type UseCase struct {
	products   repository.ProductRepository
	components repository.ComponentRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(products repository.ProductRepository, components repository.ComponentRepository) *UseCase {
	return &UseCase{products: products, components: components}
}

// ListProducts devuelve los productos en el orden de presentación configurado.
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductDTO{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Stock:        p.Stock,
			CategoryID:   p.CategoryID,
			SortOrder:    p.SortOrder,
			WarningLimit: p.WarningLimit,
		})
	}
	return out, nil
}

// ListComponents devuelve las materias primas ordenadas por nombre.
func (uc *UseCase) ListComponents(ctx context.Context) ([]dto.ComponentDTO, error) {
	components, err := uc.components.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComponentDTO, 0, len(components))
	for _, c := range components {
		out = append(out, dto.ComponentDTO{
			ID:           c.ID,
			Name:         c.Name,
			Stock:        c.Stock,
			Unit:         c.Unit,
			WarningLimit: c.WarningLimit,
		})
	}
	return out, nil
}

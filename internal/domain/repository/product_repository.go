package repository

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

// ProductRepository define el puerto de stock y catálogo para productos
// terminados. Mismo contrato de write condicional atómico que los componentes.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	// List devuelve el catálogo ordenado por sort_order y luego nombre.
	List(ctx context.Context) ([]*entity.Product, error)
	ListCritical(ctx context.Context, defaultLimit int64) ([]*entity.Product, error)

	GetStock(ctx context.Context, id int64) (int64, error)
	GetManyStock(ctx context.Context, ids []int64) (map[int64]int64, error)
	ApplyDelta(ctx context.Context, id int64, delta int64) (int64, error)
}

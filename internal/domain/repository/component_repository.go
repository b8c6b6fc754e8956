package repository

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

// ComponentRepository define el puerto de stock y catálogo para componentes.
// ApplyDelta debe validar contra el valor persistido al momento del write
// (update condicional atómico), nunca contra un valor leído antes por el caller.
type ComponentRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Component, error)
	// ListByIDs devuelve los componentes existentes entre los ids pedidos;
	// los ids desconocidos simplemente no aparecen (el caller detecta huecos).
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Component, error)
	List(ctx context.Context) ([]*entity.Component, error)
	// ListCritical devuelve los componentes con stock en o bajo su umbral
	// de alerta (warning_limit, o defaultLimit cuando es NULL).
	ListCritical(ctx context.Context, defaultLimit int64) ([]*entity.Component, error)

	GetStock(ctx context.Context, id int64) (int64, error)
	GetManyStock(ctx context.Context, ids []int64) (map[int64]int64, error)
	// ApplyDelta suma delta (puede ser negativo) de forma atómica y devuelve
	// el stock resultante. Falla con domain.ErrInsufficientStock si el
	// resultado sería negativo y con domain.ErrNotFound si el id no existe.
	ApplyDelta(ctx context.Context, id int64, delta int64) (int64, error)
}

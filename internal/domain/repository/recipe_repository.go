package repository

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

// RecipeRepository define el puerto de lectura de recetas (product_components).
// Data de referencia: solo lectura desde el core.
type RecipeRepository interface {
	// ListByProductAndType devuelve las líneas de receta de un producto para
	// un tipo de proceso (PRODUCTION o SALE), en orden estable. Lista vacía
	// si el producto no tiene receta definida; el caller decide si es error.
	ListByProductAndType(ctx context.Context, productID int64, processType string) ([]*entity.RecipeEntry, error)
}

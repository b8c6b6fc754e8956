package ledger

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
)

// RecipeLine es una línea de receta ya resuelta: componente y consumo por
// unidad de producto.
type RecipeLine struct {
	ComponentID     int64
	QuantityPerUnit int64
}

// RecipeResolver es la única frontera de resolución de recetas: los callers
// nunca saben de dónde sale la receta. La fuente es siempre la tabla de
// referencia product_components; la tabla estática por SKU de iteraciones
// tempranas quedó descartada porque se rompía en silencio con SKUs nuevos.
type RecipeResolver struct {
	recipes repository.RecipeRepository
}

// NewRecipeResolver construye el resolver sobre el repositorio de recetas.
func NewRecipeResolver(recipes repository.RecipeRepository) *RecipeResolver {
	return &RecipeResolver{recipes: recipes}
}

// Resolve devuelve la receta de (productID, processType) como lista ordenada
// de líneas. Lista vacía si no hay receta definida. Filas duplicadas del
// mismo componente se fusionan sumando cantidades, conservando el orden de
// primera aparición: la supresión de duplicados es estructural, no incidental.
func (r *RecipeResolver) Resolve(ctx context.Context, productID int64, processType string) ([]RecipeLine, error) {
	entries, err := r.recipes.ListByProductAndType(ctx, productID, processType)
	if err != nil {
		return nil, err
	}

	lines := make([]RecipeLine, 0, len(entries))
	index := make(map[int64]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.ComponentID]; ok {
			lines[i].QuantityPerUnit += e.QuantityNeeded
			continue
		}
		index[e.ComponentID] = len(lines)
		lines = append(lines, RecipeLine{
			ComponentID:     e.ComponentID,
			QuantityPerUnit: e.QuantityNeeded,
		})
	}
	return lines, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo lectura de recetas (product_components) sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ListByProductAndType devuelve las líneas de receta en orden estable por
// component_id, para que resolver dos veces la misma receta dé la misma lista.
func (r *RecipeRepo) ListByProductAndType(ctx context.Context, productID int64, processType string) ([]*entity.RecipeEntry, error) {
	query := `
		SELECT product_id, component_id, quantity_needed, process_type
		FROM product_components
		WHERE product_id = $1 AND process_type = $2
		ORDER BY component_id`
	rows, err := r.q.Query(ctx, query, productID, processType)
	if err != nil {
		return nil, fmt.Errorf("list recipe entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.RecipeEntry
	for rows.Next() {
		var e entity.RecipeEntry
		if err := rows.Scan(&e.ProductID, &e.ComponentID, &e.QuantityNeeded, &e.ProcessType); err != nil {
			return nil, fmt.Errorf("scan recipe entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

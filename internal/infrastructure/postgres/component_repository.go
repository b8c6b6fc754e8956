package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación de ComponentRepository sobre PostgreSQL
// (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

// GetByID obtiene un componente por ID. Devuelve nil sin error si no existe.
func (r *ComponentRepo) GetByID(ctx context.Context, id int64) (*entity.Component, error) {
	query := `
		SELECT id, name, stock, unit, warning_limit
		FROM components WHERE id = $1`
	var c entity.Component
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Stock, &c.Unit, &c.WarningLimit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component: %w", err)
	}
	return &c, nil
}

// ListByIDs obtiene en batch los componentes pedidos; ids desconocidos no aparecen.
func (r *ComponentRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Component, error) {
	if len(ids) == 0 {
		return []*entity.Component{}, nil
	}
	query := `
		SELECT id, name, stock, unit, warning_limit
		FROM components WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list components by ids: %w", err)
	}
	defer rows.Close()
	return scanComponents(rows)
}

// List devuelve todos los componentes ordenados por nombre.
func (r *ComponentRepo) List(ctx context.Context) ([]*entity.Component, error) {
	query := `
		SELECT id, name, stock, unit, warning_limit
		FROM components ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()
	return scanComponents(rows)
}

// ListCritical devuelve los componentes con stock en o bajo su umbral de alerta.
func (r *ComponentRepo) ListCritical(ctx context.Context, defaultLimit int64) ([]*entity.Component, error) {
	query := `
		SELECT id, name, stock, unit, warning_limit
		FROM components
		WHERE stock <= COALESCE(warning_limit, $1)
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, defaultLimit)
	if err != nil {
		return nil, fmt.Errorf("list critical components: %w", err)
	}
	defer rows.Close()
	return scanComponents(rows)
}

// GetStock obtiene el stock actual de un componente.
func (r *ComponentRepo) GetStock(ctx context.Context, id int64) (int64, error) {
	var stock int64
	err := r.q.QueryRow(ctx, `SELECT stock FROM components WHERE id = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get component stock: %w", err)
	}
	return stock, nil
}

// GetManyStock lee en batch el stock de varios componentes.
func (r *ComponentRepo) GetManyStock(ctx context.Context, ids []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, stock FROM components WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get many component stock: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, stock int64
		if err := rows.Scan(&id, &stock); err != nil {
			return nil, fmt.Errorf("scan component stock: %w", err)
		}
		result[id] = stock
	}
	return result, rows.Err()
}

// ApplyDelta suma delta al stock como un solo statement condicional: el check
// de no-negatividad corre contra el valor persistido al momento del write,
// no contra lo que el caller leyó antes. Eso hace el update por fila seguro
// bajo concurrencia aunque la validación previa sea optimista.
func (r *ComponentRepo) ApplyDelta(ctx context.Context, id int64, delta int64) (int64, error) {
	query := `
		UPDATE components SET stock = stock + $2
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING stock`
	var newStock int64
	err := r.q.QueryRow(ctx, query, id, delta).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// La condición no matcheó: distinguir fila inexistente de stock insuficiente.
			if _, err := r.GetStock(ctx, id); errors.Is(err, domain.ErrNotFound) {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("apply component delta: %w", err)
	}
	return newStock, nil
}

func scanComponents(rows pgx.Rows) ([]*entity.Component, error) {
	var list []*entity.Component
	for rows.Next() {
		var c entity.Component
		if err := rows.Scan(&c.ID, &c.Name, &c.Stock, &c.Unit, &c.WarningLimit); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, stock, category_id, sort_order, warning_limit
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Stock, &p.CategoryID, &p.SortOrder, &p.WarningLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByIDs obtiene en batch los productos pedidos; ids desconocidos no aparecen.
func (r *ProductRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	query := `
		SELECT id, name, sku, stock, category_id, sort_order, warning_limit
		FROM products WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list products by ids: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// List devuelve el catálogo ordenado por sort_order y luego nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, sku, stock, category_id, sort_order, warning_limit
		FROM products ORDER BY sort_order, name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListCritical devuelve los productos con stock en o bajo su umbral de alerta.
func (r *ProductRepo) ListCritical(ctx context.Context, defaultLimit int64) ([]*entity.Product, error) {
	query := `
		SELECT id, name, sku, stock, category_id, sort_order, warning_limit
		FROM products
		WHERE stock <= COALESCE(warning_limit, $1)
		ORDER BY sort_order, name`
	rows, err := r.q.Query(ctx, query, defaultLimit)
	if err != nil {
		return nil, fmt.Errorf("list critical products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetStock obtiene el stock actual de un producto.
func (r *ProductRepo) GetStock(ctx context.Context, id int64) (int64, error) {
	var stock int64
	err := r.q.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get product stock: %w", err)
	}
	return stock, nil
}

// GetManyStock lee en batch el stock de varios productos.
func (r *ProductRepo) GetManyStock(ctx context.Context, ids []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, stock FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get many product stock: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, stock int64
		if err := rows.Scan(&id, &stock); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		result[id] = stock
	}
	return result, rows.Err()
}

// ApplyDelta suma delta al stock con el mismo update condicional atómico que
// los componentes: rechaza contra el valor persistido, nunca contra caché.
func (r *ProductRepo) ApplyDelta(ctx context.Context, id int64, delta int64) (int64, error) {
	query := `
		UPDATE products SET stock = stock + $2
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING stock`
	var newStock int64
	err := r.q.QueryRow(ctx, query, id, delta).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, err := r.GetStock(ctx, id); errors.Is(err, domain.ErrNotFound) {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("apply product delta: %w", err)
	}
	return newStock, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Stock, &p.CategoryID, &p.SortOrder, &p.WarningLimit); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

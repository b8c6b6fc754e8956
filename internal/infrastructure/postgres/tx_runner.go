package postgres

import (
	"context"
	"fmt"

	"github.com/dendyelo/nooda-inventory/internal/application/ledger"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Es la garantía de todo-o-nada del motor de ledger: todos los deltas de una
// operación se confirman en un solo commit o se revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	componentRepo repository.ComponentRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	componentRepo := NewComponentRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(componentRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

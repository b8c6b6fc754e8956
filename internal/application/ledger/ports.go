package ledger

import (
	"context"

	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza el todo-o-nada del motor de ledger:
// si cualquier delta individual falla, ningún delta queda aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		componentRepo repository.ComponentRepository,
		productRepo repository.ProductRepository,
	) error) error
}

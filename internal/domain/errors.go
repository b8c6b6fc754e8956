package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrNoRecipe          = errors.New("receta no definida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrConflict          = errors.New("conflicto con el estado actual")
)

// StockShortfall describe un faltante de stock detectado durante la validación.
type StockShortfall struct {
	Name      string
	Required  int64
	Available int64
}

// String devuelve la línea de faltante en el formato que ve el operador.
func (s StockShortfall) String() string {
	return fmt.Sprintf("Insufficient stock for %s. Required: %d, Available: %d", s.Name, s.Required, s.Available)
}

// InsufficientStockError agrupa todos los faltantes de una operación:
// primero el bloque de productos, luego el de componentes, para que el
// operador vea ambas categorías de un vistazo y no solo el primer fallo.
type InsufficientStockError struct {
	Products   []StockShortfall
	Components []StockShortfall
}

// Error concatena los bloques de faltantes separados por una línea en blanco.
func (e *InsufficientStockError) Error() string {
	var blocks []string
	if len(e.Products) > 0 {
		lines := make([]string, len(e.Products))
		for i, s := range e.Products {
			lines[i] = s.String()
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(e.Components) > 0 {
		lines := make([]string, len(e.Components))
		for i, s := range e.Components {
			lines[i] = s.String()
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(blocks) == 0 {
		return ErrInsufficientStock.Error()
	}
	return strings.Join(blocks, "\n\n")
}

// Is permite errors.Is(err, domain.ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

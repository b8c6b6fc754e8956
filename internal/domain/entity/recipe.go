package entity

// Tipos de proceso de una receta (bill of materials).
const (
	ProcessTypePRODUCTION = "PRODUCTION" // consumo al producir
	ProcessTypeSALE       = "SALE"       // consumo de empaque al vender
)

// RecipeEntry es una línea de la receta de un producto: cuánto de un
// componente se consume por unidad de producto en un proceso dado.
// Es data de referencia inmutable; para un (product_id, process_type)
// no debería existir más de una fila por componente.
type RecipeEntry struct {
	ProductID      int64
	ComponentID    int64
	QuantityNeeded int64 // por unidad de producto, siempre > 0
	ProcessType    string
}
